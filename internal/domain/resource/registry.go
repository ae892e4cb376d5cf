package resource

import "fmt"

// Registry maps each kind to the counter of its repository. It is filled
// once at startup and read-only afterwards.
type Registry struct {
	counters map[Kind]Counter
}

// NewRegistry builds a registry from counters. Every entry must name a known kind.
func NewRegistry(counters map[Kind]Counter) (*Registry, error) {
	r := &Registry{counters: make(map[Kind]Counter, len(counters))}
	for kind, c := range counters {
		if _, ok := kind.Info(); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
		}
		if c == nil {
			return nil, fmt.Errorf("nil counter for %s", kind)
		}
		r.counters[kind] = c
	}
	return r, nil
}

func (r *Registry) Counter(kind Kind) (Counter, bool) {
	c, ok := r.counters[kind]
	return c, ok
}

func (r *Registry) Len() int {
	return len(r.counters)
}
