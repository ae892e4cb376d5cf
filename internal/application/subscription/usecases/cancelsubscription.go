package usecases

import (
	"context"
	"errors"

	"github.com/folio-hq/folio/internal/application/subscription/dto"
	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/domain/subscription"
	"github.com/folio-hq/folio/internal/infrastructure/messaging"
	apperrors "github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

type CancelSubscriptionCommand struct {
	AccountID uint
	Reason    string
}

type CancelSubscriptionUseCase struct {
	subscriptions subscription.Repository
	accounts      account.Repository
	plans         *entitlement.PlanTable
	publisher     EventPublisher
	logger        logger.Interface
}

func NewCancelSubscriptionUseCase(
	subscriptions subscription.Repository,
	accounts account.Repository,
	plans *entitlement.PlanTable,
	publisher EventPublisher,
	logger logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		subscriptions: subscriptions,
		accounts:      accounts,
		plans:         plans,
		publisher:     publisher,
		logger:        logger,
	}
}

// Execute cancels the paid active row and opens a free row starting where
// the cancelled one ends.
func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd CancelSubscriptionCommand) (*dto.TransitionDTO, error) {
	sub, err := uc.subscriptions.GetActiveByAccountID(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to get active subscription", "error", err, "account_id", cmd.AccountID)
		return nil, apperrors.NewInternalError("Failed to cancel subscription")
	}
	if sub == nil {
		return nil, apperrors.NewInvalidOperationError(404, "No active subscription found")
	}

	if err := sub.Cancel(cmd.Reason); err != nil {
		if errors.Is(err, subscription.ErrCannotCancelFree) {
			return nil, apperrors.NewInvalidOperationError(400, "Cannot cancel free subscription")
		}
		return nil, apperrors.NewInvalidOperationError(400, err.Error())
	}
	if err := uc.subscriptions.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to cancel subscription", "error", err, "subscription_id", sub.ID())
		return nil, apperrors.NewInternalError("Failed to cancel subscription")
	}

	free, err := subscription.NewFreeSubscription(cmd.AccountID, sub.EndDate(), uc.plans.Features(entitlement.PlanFree))
	if err != nil {
		return nil, apperrors.NewInternalError("Failed to cancel subscription")
	}
	if err := uc.subscriptions.Create(ctx, free); err != nil {
		uc.logger.Errorw("failed to create free subscription", "error", err, "account_id", cmd.AccountID)
		return nil, apperrors.NewInternalError("Failed to cancel subscription")
	}

	freeEnd := free.EndDate()
	if err := uc.accounts.UpdateTier(ctx, cmd.AccountID, entitlement.PlanFree, &freeEnd); err != nil {
		uc.logger.Errorw("failed to sync account tier", "error", err, "account_id", cmd.AccountID)
		return nil, apperrors.NewInternalError("Failed to cancel subscription")
	}

	uc.logger.Infow("subscription cancelled",
		"account_id", cmd.AccountID,
		"subscription_id", sub.ID(),
		"reason", cmd.Reason,
	)
	publish(ctx, uc.publisher, uc.logger, messaging.NewSubscriptionEvent(
		messaging.SubscriptionCancelled, cmd.AccountID, sub.ID(), sub.PlanID().String(),
	))

	return &dto.TransitionDTO{
		Message:      "Subscription cancelled successfully",
		Subscription: dto.ToSubscriptionDTO(sub),
	}, nil
}
