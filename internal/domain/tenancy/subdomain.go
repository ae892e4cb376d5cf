package tenancy

import (
	"regexp"
	"strings"
)

var subdomainPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// DefaultReservedSubdomains are the labels no account may register.
var DefaultReservedSubdomains = []string{"www", "api", "admin", "dashboard", "support", "help", "blog", "docs"}

// ReservedSet is an immutable, case-insensitive set of reserved subdomains.
type ReservedSet struct {
	names map[string]struct{}
}

func NewReservedSet(names []string) ReservedSet {
	set := ReservedSet{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		set.names[n] = struct{}{}
	}
	return set
}

func (s ReservedSet) Contains(subdomain string) bool {
	_, ok := s.names[strings.ToLower(subdomain)]
	return ok
}

func (s ReservedSet) Len() int {
	return len(s.names)
}

// NormalizeSubdomain lowercases and trims a subdomain for storage and lookup.
func NormalizeSubdomain(subdomain string) string {
	return strings.ToLower(strings.TrimSpace(subdomain))
}

// ValidateSubdomain checks the character set and the reserved list.
func ValidateSubdomain(subdomain string, reserved ReservedSet) error {
	if !subdomainPattern.MatchString(subdomain) {
		return ErrInvalidSubdomain
	}
	if reserved.Contains(subdomain) {
		return ErrReservedSubdomain
	}
	return nil
}

// IsWellFormedSubdomain reports whether s only contains letters, digits and hyphens.
func IsWellFormedSubdomain(s string) bool {
	return subdomainPattern.MatchString(s)
}
