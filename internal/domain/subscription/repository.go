package subscription

import (
	"context"
	"time"
)

// Repository persists the subscription ledger. Single-row lookups return
// (nil, nil) when nothing matches; "latest" means newest by creation time.
type Repository interface {
	Create(ctx context.Context, sub *Subscription) error
	Update(ctx context.Context, sub *Subscription) error

	// GetActiveByAccountID returns the newest row with status active.
	GetActiveByAccountID(ctx context.Context, accountID uint) (*Subscription, error)

	// GetCurrentByAccountID returns the newest active row, or the newest
	// cancelled row when the account has no active one.
	GetCurrentByAccountID(ctx context.Context, accountID uint) (*Subscription, error)

	// GetLatestCancelledByAccountID returns the newest cancelled paid row.
	// Free rows are never cancelled by their owner, only superseded, so they
	// cannot be reactivated.
	GetLatestCancelledByAccountID(ctx context.Context, accountID uint) (*Subscription, error)

	GetLatestByAccountID(ctx context.Context, accountID uint) (*Subscription, error)

	ListByAccountID(ctx context.Context, accountID uint, limit int) ([]*Subscription, error)

	CountByStatus(ctx context.Context) (map[Status]int64, error)

	// ListActive returns every active row, used for revenue estimates.
	ListActive(ctx context.Context) ([]*Subscription, error)

	// ListCreatedSince returns rows created at or after since, oldest first.
	ListCreatedSince(ctx context.Context, since time.Time) ([]*Subscription, error)

	// CountCancelledSince counts rows moved to cancelled at or after since.
	CountCancelledSince(ctx context.Context, since time.Time) (int64, error)
}
