package resource

import "context"

// Finder loads a single record by id regardless of owner.
type Finder[T Record] interface {
	FindOne(ctx context.Context, id uint) (T, error)
}

// Counter counts an owner's records of one kind.
type Counter interface {
	Count(ctx context.Context, ownerID uint) (int64, error)
}

// Repository is the generic owner-scoped store for one record type.
// FindOne returns ErrNotFound when the id does not exist.
type Repository[T Record] interface {
	Finder[T]
	Counter

	// Find lists an owner's records by display order ascending, newest first
	// within the same order.
	Find(ctx context.Context, ownerID uint) ([]T, error)
	Create(ctx context.Context, record T) error
	UpdateOne(ctx context.Context, record T) error
	DeleteOne(ctx context.Context, id uint) error
}
