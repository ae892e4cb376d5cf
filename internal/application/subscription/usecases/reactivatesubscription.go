package usecases

import (
	"context"

	"github.com/folio-hq/folio/internal/application/subscription/dto"
	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/domain/subscription"
	"github.com/folio-hq/folio/internal/infrastructure/messaging"
	"github.com/folio-hq/folio/internal/shared/biztime"
	apperrors "github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

// ReactivateSubscriptionCommand overrides the revived row's plan and payment
// when the fields are set.
type ReactivateSubscriptionCommand struct {
	AccountID     uint
	PlanID        string
	PaymentMethod string
	PaymentID     string
}

type ReactivateSubscriptionUseCase struct {
	subscriptions subscription.Repository
	accounts      account.Repository
	plans         *entitlement.PlanTable
	publisher     EventPublisher
	logger        logger.Interface
}

func NewReactivateSubscriptionUseCase(
	subscriptions subscription.Repository,
	accounts account.Repository,
	plans *entitlement.PlanTable,
	publisher EventPublisher,
	logger logger.Interface,
) *ReactivateSubscriptionUseCase {
	return &ReactivateSubscriptionUseCase{
		subscriptions: subscriptions,
		accounts:      accounts,
		plans:         plans,
		publisher:     publisher,
		logger:        logger,
	}
}

func (uc *ReactivateSubscriptionUseCase) Execute(ctx context.Context, cmd ReactivateSubscriptionCommand) (*dto.TransitionDTO, error) {
	sub, err := uc.subscriptions.GetLatestCancelledByAccountID(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to get cancelled subscription", "error", err, "account_id", cmd.AccountID)
		return nil, apperrors.NewInternalError("Failed to reactivate subscription")
	}
	if sub == nil {
		return nil, apperrors.NewInvalidOperationError(404, "No cancelled subscription found")
	}

	params := subscription.ReactivateParams{
		Payment: subscription.Payment{
			Method: subscription.PaymentMethod(cmd.PaymentMethod),
			ID:     cmd.PaymentID,
		},
	}
	if cmd.PlanID != "" {
		plan, ok := entitlement.ParsePlanID(cmd.PlanID)
		if !ok {
			return nil, apperrors.NewValidationError("Invalid plan selected")
		}
		params.PlanID = plan
	}

	// The free row opened by a cancel would otherwise stay active alongside
	// the revived one.
	interim, err := uc.subscriptions.GetActiveByAccountID(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to get active subscription", "error", err, "account_id", cmd.AccountID)
		return nil, apperrors.NewInternalError("Failed to reactivate subscription")
	}

	now := biztime.NowUTC()
	features := uc.plans.Features(sub.PlanAfterReactivation(params))
	if err := sub.Reactivate(params, features, now); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if interim != nil && interim.PlanID().IsFree() {
		interim.Supersede()
		if err := uc.subscriptions.Update(ctx, interim); err != nil {
			uc.logger.Errorw("failed to supersede free subscription", "error", err, "subscription_id", interim.ID())
			return nil, apperrors.NewInternalError("Failed to reactivate subscription")
		}
	}

	if err := uc.subscriptions.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to reactivate subscription", "error", err, "subscription_id", sub.ID())
		return nil, apperrors.NewInternalError("Failed to reactivate subscription")
	}

	endDate := sub.EndDate()
	if err := uc.accounts.UpdateTier(ctx, cmd.AccountID, sub.PlanID(), &endDate); err != nil {
		uc.logger.Errorw("failed to sync account tier", "error", err, "account_id", cmd.AccountID)
		return nil, apperrors.NewInternalError("Failed to reactivate subscription")
	}

	uc.logger.Infow("subscription reactivated",
		"account_id", cmd.AccountID,
		"subscription_id", sub.ID(),
		"plan", sub.PlanID(),
	)
	publish(ctx, uc.publisher, uc.logger, messaging.NewSubscriptionEvent(
		messaging.SubscriptionReactivated, cmd.AccountID, sub.ID(), sub.PlanID().String(),
	))

	return &dto.TransitionDTO{
		Message:      "Subscription reactivated successfully",
		Subscription: dto.ToSubscriptionDTO(sub),
	}, nil
}
