package usecases

import (
	"context"
	"fmt"

	"github.com/folio-hq/folio/internal/application/subscription/dto"
	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/domain/resource"
	"github.com/folio-hq/folio/internal/domain/subscription"
	"github.com/folio-hq/folio/internal/shared/biztime"
	apperrors "github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

// CheckLimitsUseCase reads the limit for a resource type from the active
// row's feature snapshot and counts the account's records. An account with no
// active row gets its free row opened first, as GetCurrentSubscription does.
type CheckLimitsUseCase struct {
	subscriptions subscription.Repository
	plans         *entitlement.PlanTable
	registry      *resource.Registry
	logger        logger.Interface
}

func NewCheckLimitsUseCase(
	subscriptions subscription.Repository,
	plans *entitlement.PlanTable,
	registry *resource.Registry,
	logger logger.Interface,
) *CheckLimitsUseCase {
	return &CheckLimitsUseCase{subscriptions: subscriptions, plans: plans, registry: registry, logger: logger}
}

func (uc *CheckLimitsUseCase) Execute(ctx context.Context, accountID uint, resourceType string) (*dto.LimitsDTO, error) {
	kind, ok := resource.ParseKind(resourceType)
	if !ok {
		return nil, apperrors.NewValidationError("Invalid resource type")
	}
	info, _ := kind.Info()

	sub, err := uc.subscriptions.GetActiveByAccountID(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to get active subscription", "error", err, "account_id", accountID)
		return nil, apperrors.NewInternalError("Failed to check limits")
	}
	if sub == nil {
		sub, err = openFreeSubscription(ctx, uc.subscriptions, uc.plans, accountID, biztime.NowUTC(), uc.logger)
		if err != nil {
			return nil, apperrors.NewInternalError("Failed to check limits")
		}
	}

	limit := sub.Features().LimitFor(info.Limit)
	if limit == entitlement.Unlimited {
		return &dto.LimitsDTO{HasLimit: false, Limit: entitlement.Unlimited, Message: "Unlimited"}, nil
	}

	counter, ok := uc.registry.Counter(kind)
	if !ok {
		return nil, apperrors.NewInternalError("Failed to check limits")
	}
	current, err := counter.Count(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to count resources", "error", err, "account_id", accountID, "kind", kind)
		return nil, apperrors.NewInternalError("Failed to check limits")
	}

	quota := entitlement.Evaluate(limit, current)
	message := "Limit reached"
	if quota.Allowed {
		message = fmt.Sprintf("%d remaining", quota.Remaining)
	}
	return &dto.LimitsDTO{
		HasLimit:     true,
		Limit:        limit,
		CurrentCount: &quota.Current,
		Remaining:    &quota.Remaining,
		CanAdd:       &quota.Allowed,
		Message:      message,
	}, nil
}
