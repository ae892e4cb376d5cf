package usecases

import (
	"context"

	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/domain/resource"
	apperrors "github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

// DenialRecorder counts quota denials.
type DenialRecorder interface {
	QuotaDenied(kind, plan string)
}

type CheckQuotaCommand struct {
	AccountID uint
	Tier      entitlement.PlanID
	Kind      resource.Kind
}

// CheckQuotaUseCase gates creation of limited kinds against the account's
// cached tier. The count and the later insert are separate statements, so
// concurrent creates can overshoot the limit.
type CheckQuotaUseCase struct {
	registry *resource.Registry
	plans    *entitlement.PlanTable
	recorder DenialRecorder
	logger   logger.Interface
}

func NewCheckQuotaUseCase(
	registry *resource.Registry,
	plans *entitlement.PlanTable,
	recorder DenialRecorder,
	logger logger.Interface,
) *CheckQuotaUseCase {
	return &CheckQuotaUseCase{
		registry: registry,
		plans:    plans,
		recorder: recorder,
		logger:   logger,
	}
}

// Execute returns the evaluated quota, or a quota-exceeded AppError when the
// limit is reached. Kinds without a plan limit are always allowed.
func (uc *CheckQuotaUseCase) Execute(ctx context.Context, cmd CheckQuotaCommand) (entitlement.Quota, error) {
	info, ok := cmd.Kind.Info()
	if !ok {
		return entitlement.Quota{}, apperrors.NewValidationError("Invalid resource type")
	}
	if !info.QuotaLimited() {
		return entitlement.Evaluate(entitlement.Unlimited, 0), nil
	}

	limit := uc.plans.Limit(cmd.Tier, info.Limit)
	if limit == entitlement.Unlimited {
		return entitlement.Evaluate(limit, 0), nil
	}

	counter, ok := uc.registry.Counter(cmd.Kind)
	if !ok {
		uc.logger.Errorw("no counter registered", "kind", cmd.Kind)
		return entitlement.Quota{}, apperrors.NewInternalError("Failed to check limits")
	}
	current, err := counter.Count(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to count resources", "error", err, "account_id", cmd.AccountID, "kind", cmd.Kind)
		return entitlement.Quota{}, apperrors.NewInternalError("Failed to check limits")
	}

	quota := entitlement.Evaluate(limit, current)
	if !quota.Allowed {
		if uc.recorder != nil {
			uc.recorder.QuotaDenied(string(info.Limit), cmd.Tier.String())
		}
		uc.logger.Infow("quota exceeded",
			"account_id", cmd.AccountID,
			"kind", cmd.Kind,
			"plan", cmd.Tier,
			"limit", limit,
			"current", current,
		)
		return quota, apperrors.NewQuotaExceededError(string(info.Limit), int64(limit), current)
	}
	return quota, nil
}

// PlanFeatures returns the features of planID, falling back to free for
// unknown plans.
func (uc *CheckQuotaUseCase) PlanFeatures(planID string) entitlement.Features {
	return uc.plans.Features(entitlement.PlanID(planID))
}
