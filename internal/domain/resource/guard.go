package resource

import (
	"context"
	"errors"
)

// Lookup is the outcome of an owner-scoped fetch. A missing record and a
// record owned by someone else produce the same Unavailable value.
type Lookup[T Record] struct {
	record    T
	available bool
}

func Available[T Record](record T) Lookup[T] {
	return Lookup[T]{record: record, available: true}
}

func Unavailable[T Record]() Lookup[T] {
	return Lookup[T]{}
}

func (l Lookup[T]) IsAvailable() bool {
	return l.available
}

// Get returns the record and whether it is available.
func (l Lookup[T]) Get() (T, bool) {
	return l.record, l.available
}

// Guard scopes record access to an owner.
type Guard[T Record] struct {
	finder Finder[T]
}

func NewGuard[T Record](finder Finder[T]) *Guard[T] {
	return &Guard[T]{finder: finder}
}

// Scope fetches id and returns it only when ownerID owns it. The error is
// reserved for store failures.
func (g *Guard[T]) Scope(ctx context.Context, ownerID, id uint) (Lookup[T], error) {
	if id == 0 || ownerID == 0 {
		return Unavailable[T](), nil
	}

	record, err := g.finder.FindOne(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Unavailable[T](), nil
		}
		return Unavailable[T](), err
	}
	if record.GetOwnerID() != ownerID {
		return Unavailable[T](), nil
	}
	return Available(record), nil
}
