package account

import (
	"context"
	"time"

	"github.com/folio-hq/folio/internal/domain/entitlement"
)

// Repository persists accounts. Lookups return (nil, nil) when nothing matches.
type Repository interface {
	Create(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error

	GetByID(ctx context.Context, id uint) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)

	// GetBySubdomain matches case-insensitively regardless of the active flag.
	GetBySubdomain(ctx context.Context, subdomain string) (*Account, error)

	// GetActiveBySubdomain matches case-insensitively among active accounts.
	GetActiveBySubdomain(ctx context.Context, subdomain string) (*Account, error)

	// UpdateTier writes only the cached tier columns.
	UpdateTier(ctx context.Context, id uint, tier entitlement.PlanID, expiresAt *time.Time) error

	List(ctx context.Context, filter ListFilter) ([]*Account, int64, error)

	// CountByTier groups all accounts by cached tier.
	CountByTier(ctx context.Context) (map[entitlement.PlanID]int64, error)
}

// ListFilter drives the administrative account listing.
type ListFilter struct {
	Page     int
	PageSize int
	Search   string
	Tier     string
	Active   *bool

	CreatedAfter *time.Time
}
