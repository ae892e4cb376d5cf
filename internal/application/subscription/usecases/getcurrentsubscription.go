package usecases

import (
	"context"
	"time"

	"github.com/folio-hq/folio/internal/application/subscription/dto"
	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/domain/subscription"
	"github.com/folio-hq/folio/internal/infrastructure/messaging"
	"github.com/folio-hq/folio/internal/shared/biztime"
	apperrors "github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

// GetCurrentSubscriptionUseCase returns the newest active or cancelled row.
// An account without one gets a free row; an active row past its end date
// is flipped to expired and the account's cached tier drops to free.
type GetCurrentSubscriptionUseCase struct {
	subscriptions subscription.Repository
	accounts      account.Repository
	plans         *entitlement.PlanTable
	publisher     EventPublisher
	logger        logger.Interface
}

func NewGetCurrentSubscriptionUseCase(
	subscriptions subscription.Repository,
	accounts account.Repository,
	plans *entitlement.PlanTable,
	publisher EventPublisher,
	logger logger.Interface,
) *GetCurrentSubscriptionUseCase {
	return &GetCurrentSubscriptionUseCase{
		subscriptions: subscriptions,
		accounts:      accounts,
		plans:         plans,
		publisher:     publisher,
		logger:        logger,
	}
}

func (uc *GetCurrentSubscriptionUseCase) Execute(ctx context.Context, accountID uint) (*dto.SubscriptionDTO, error) {
	sub, err := uc.subscriptions.GetCurrentByAccountID(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to get current subscription", "error", err, "account_id", accountID)
		return nil, apperrors.NewInternalError("Failed to get subscription")
	}

	now := biztime.NowUTC()

	if sub == nil {
		sub, err = openFreeSubscription(ctx, uc.subscriptions, uc.plans, accountID, now, uc.logger)
		if err != nil {
			return nil, apperrors.NewInternalError("Failed to get subscription")
		}
		return dto.ToSubscriptionDTO(sub), nil
	}

	if sub.Status() == subscription.StatusActive && sub.IsExpired(now) {
		if err := uc.expire(ctx, sub, now); err != nil {
			return nil, err
		}
	}

	return dto.ToSubscriptionDTO(sub), nil
}

func (uc *GetCurrentSubscriptionUseCase) expire(ctx context.Context, sub *subscription.Subscription, now time.Time) error {
	if err := sub.MarkExpired(); err != nil {
		return apperrors.NewInternalError("Failed to get subscription")
	}
	if err := uc.subscriptions.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to expire subscription", "error", err, "subscription_id", sub.ID())
		return apperrors.NewInternalError("Failed to get subscription")
	}

	expiresAt := now.Add(account.TierRenewal)
	if err := uc.accounts.UpdateTier(ctx, sub.AccountID(), entitlement.PlanFree, &expiresAt); err != nil {
		uc.logger.Errorw("failed to downgrade account tier", "error", err, "account_id", sub.AccountID())
		return apperrors.NewInternalError("Failed to get subscription")
	}

	uc.logger.Infow("subscription expired", "account_id", sub.AccountID(), "subscription_id", sub.ID())
	publish(ctx, uc.publisher, uc.logger, messaging.NewSubscriptionEvent(
		messaging.SubscriptionExpired, sub.AccountID(), sub.ID(), sub.PlanID().String(),
	))
	return nil
}

// openFreeSubscription persists the free row an account gets before it has
// any subscription of its own.
func openFreeSubscription(
	ctx context.Context,
	subscriptions subscription.Repository,
	plans *entitlement.PlanTable,
	accountID uint,
	now time.Time,
	log logger.Interface,
) (*subscription.Subscription, error) {
	sub, err := subscription.NewFreeSubscription(accountID, now, plans.Features(entitlement.PlanFree))
	if err != nil {
		return nil, err
	}
	if err := subscriptions.Create(ctx, sub); err != nil {
		log.Errorw("failed to create free subscription", "error", err, "account_id", accountID)
		return nil, err
	}
	log.Infow("free subscription created", "account_id", accountID, "subscription_id", sub.ID())
	return sub, nil
}
