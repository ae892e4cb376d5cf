package tenancy

import (
	"regexp"
	"strings"
)

// ClassKind identifies which surface a request host addresses.
type ClassKind string

const (
	// ClassNone marks a request that has not been classified yet. Classify
	// never returns it.
	ClassNone   ClassKind = "none"
	ClassMain   ClassKind = "main"
	ClassAPI    ClassKind = "api"
	ClassAdmin  ClassKind = "admin"
	ClassTenant ClassKind = "tenant"
)

const loopbackHost = "localhost"

var dottedQuadPattern = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+$`)

// RequestClass is the result of classifying a Host header. Subdomain is only
// set for ClassTenant.
type RequestClass struct {
	Kind      ClassKind
	Subdomain string
}

// Unclassified is the placeholder class held before Classify runs.
var Unclassified = RequestClass{Kind: ClassNone}

// IsClassified reports whether c came out of Classify.
func (c RequestClass) IsClassified() bool {
	return c.Kind != "" && c.Kind != ClassNone
}

func (c RequestClass) IsTenant() bool {
	return c.Kind == ClassTenant
}

func (c RequestClass) String() string {
	if c.Kind == ClassTenant {
		return string(c.Kind) + "(" + c.Subdomain + ")"
	}
	return string(c.Kind)
}

// MainClass is returned for hosts that carry no usable subdomain.
var MainClass = RequestClass{Kind: ClassMain}

// Classify maps a host (optionally with a port) to a request class. It never
// fails: empty or unparseable input yields the main class.
func Classify(host string) RequestClass {
	subdomain, ok := ExtractSubdomain(host)
	if !ok {
		return MainClass
	}

	switch subdomain {
	case "www":
		return MainClass
	case "api":
		return RequestClass{Kind: ClassAPI}
	case "admin":
		return RequestClass{Kind: ClassAdmin}
	default:
		return RequestClass{Kind: ClassTenant, Subdomain: subdomain}
	}
}

// ExtractSubdomain returns the lowercased first label of host when host has at
// least three labels and is not a loopback name or an IPv4 literal.
func ExtractSubdomain(host string) (string, bool) {
	host = strings.TrimSpace(host)
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	host = strings.ToLower(strings.TrimSuffix(host, "."))

	if host == "" || host == loopbackHost || dottedQuadPattern.MatchString(host) {
		return "", false
	}

	labels := strings.Split(host, ".")
	if len(labels) < 3 {
		return "", false
	}

	if labels[0] == "" {
		return "", false
	}
	return labels[0], true
}
