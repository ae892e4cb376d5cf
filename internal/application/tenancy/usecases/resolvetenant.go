package usecases

import (
	"context"

	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/domain/tenancy"
	"github.com/folio-hq/folio/internal/infrastructure/metrics"
	"github.com/folio-hq/folio/internal/shared/biztime"
	apperrors "github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

// ResolutionRecorder counts resolution outcomes.
type ResolutionRecorder interface {
	TenantResolution(outcome string)
}

// ResolveTenantUseCase maps a tenant subdomain to its active account and
// lazily downgrades an expired paid tier on the way.
type ResolveTenantUseCase struct {
	accounts account.Repository
	recorder ResolutionRecorder
	logger   logger.Interface
}

func NewResolveTenantUseCase(accounts account.Repository, recorder ResolutionRecorder, logger logger.Interface) *ResolveTenantUseCase {
	return &ResolveTenantUseCase{
		accounts: accounts,
		recorder: recorder,
		logger:   logger,
	}
}

// Execute returns a tenant-not-found AppError for unknown or inactive
// subdomains.
func (uc *ResolveTenantUseCase) Execute(ctx context.Context, subdomain string) (*account.Account, error) {
	acc, err := uc.accounts.GetActiveBySubdomain(ctx, tenancy.NormalizeSubdomain(subdomain))
	if err != nil {
		uc.record(metrics.TenantError)
		uc.logger.Errorw("failed to resolve tenant", "error", err, "subdomain", subdomain)
		return nil, apperrors.NewInternalError("Failed to resolve portfolio")
	}
	if acc == nil {
		uc.record(metrics.TenantNotFound)
		return nil, apperrors.NewTenantNotFoundError()
	}

	if acc.DowngradeIfExpired(biztime.NowUTC()) {
		// Best effort: the request is served on the downgraded tier even when
		// the write fails, and the next visit retries it.
		if err := uc.accounts.UpdateTier(ctx, acc.ID(), acc.Tier(), acc.TierExpiresAt()); err != nil {
			uc.logger.Warnw("failed to persist tier downgrade", "error", err, "account_id", acc.ID())
		} else {
			uc.logger.Infow("expired tier downgraded", "account_id", acc.ID(), "subdomain", acc.Subdomain())
		}
		uc.record(metrics.TenantDowngraded)
		return acc, nil
	}

	uc.record(metrics.TenantResolved)
	return acc, nil
}

func (uc *ResolveTenantUseCase) record(outcome string) {
	if uc.recorder != nil {
		uc.recorder.TenantResolution(outcome)
	}
}
