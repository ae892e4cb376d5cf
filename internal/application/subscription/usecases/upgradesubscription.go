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

type UpgradeSubscriptionCommand struct {
	AccountID     uint
	PlanID        string
	PaymentMethod string
	PaymentID     string
	BillingCycle  string
}

type UpgradeSubscriptionUseCase struct {
	subscriptions subscription.Repository
	accounts      account.Repository
	plans         *entitlement.PlanTable
	publisher     EventPublisher
	logger        logger.Interface
}

func NewUpgradeSubscriptionUseCase(
	subscriptions subscription.Repository,
	accounts account.Repository,
	plans *entitlement.PlanTable,
	publisher EventPublisher,
	logger logger.Interface,
) *UpgradeSubscriptionUseCase {
	return &UpgradeSubscriptionUseCase{
		subscriptions: subscriptions,
		accounts:      accounts,
		plans:         plans,
		publisher:     publisher,
		logger:        logger,
	}
}

// Execute supersedes the active row and opens a paid one. The steps are not
// wrapped in a transaction; a failure midway leaves the earlier writes.
func (uc *UpgradeSubscriptionUseCase) Execute(ctx context.Context, cmd UpgradeSubscriptionCommand) (*dto.TransitionDTO, error) {
	plan, ok := entitlement.ParsePlanID(cmd.PlanID)
	if !ok || !plan.IsPaid() {
		return nil, apperrors.NewValidationError("Invalid plan selected")
	}

	cycle := subscription.BillingCycle(cmd.BillingCycle)
	if cycle == "" {
		cycle = subscription.CycleMonthly
	}
	if !cycle.IsPurchasable() {
		return nil, apperrors.NewValidationError("Invalid billing cycle")
	}

	method := subscription.PaymentMethod(cmd.PaymentMethod)
	if method != "" && !method.IsValid() {
		return nil, apperrors.NewValidationError("Invalid payment method")
	}

	current, err := uc.subscriptions.GetActiveByAccountID(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to get active subscription", "error", err, "account_id", cmd.AccountID)
		return nil, apperrors.NewInternalError("Failed to upgrade subscription")
	}
	if current != nil {
		current.Supersede()
		if err := uc.subscriptions.Update(ctx, current); err != nil {
			uc.logger.Errorw("failed to supersede subscription", "error", err, "subscription_id", current.ID())
			return nil, apperrors.NewInternalError("Failed to upgrade subscription")
		}
	}

	now := biztime.NowUTC()
	sub, err := subscription.NewSubscription(subscription.NewParams{
		AccountID:    cmd.AccountID,
		PlanID:       plan,
		StartDate:    now,
		EndDate:      cycle.AddTo(now),
		Payment:      subscription.Payment{Method: method, ID: cmd.PaymentID},
		Amount:       entitlement.PriceFor(plan, string(cycle)),
		BillingCycle: cycle,
		Features:     uc.plans.Features(plan),
	})
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.subscriptions.Create(ctx, sub); err != nil {
		uc.logger.Errorw("failed to create subscription", "error", err, "account_id", cmd.AccountID)
		return nil, apperrors.NewInternalError("Failed to upgrade subscription")
	}

	endDate := sub.EndDate()
	if err := uc.accounts.UpdateTier(ctx, cmd.AccountID, plan, &endDate); err != nil {
		uc.logger.Errorw("failed to sync account tier", "error", err, "account_id", cmd.AccountID)
		return nil, apperrors.NewInternalError("Failed to upgrade subscription")
	}

	uc.logger.Infow("subscription upgraded",
		"account_id", cmd.AccountID,
		"subscription_id", sub.ID(),
		"plan", plan,
		"billing_cycle", cycle,
	)
	publish(ctx, uc.publisher, uc.logger, messaging.NewSubscriptionEvent(
		messaging.SubscriptionUpgraded, cmd.AccountID, sub.ID(), plan.String(),
	))

	return &dto.TransitionDTO{
		Message:      "Subscription upgraded successfully",
		Subscription: dto.ToSubscriptionDTO(sub),
	}, nil
}
