package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/domain/subscription"
	"github.com/folio-hq/folio/internal/infrastructure/messaging"
	apperrors "github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

func TestUpgradeSubscriptionUseCase_Execute_RejectsPlans(t *testing.T) {
	tests := []struct {
		name    string
		cmd     UpgradeSubscriptionCommand
		wantMsg string
	}{
		{"free target", UpgradeSubscriptionCommand{AccountID: 1, PlanID: "free"}, "Invalid plan selected"},
		{"unknown target", UpgradeSubscriptionCommand{AccountID: 1, PlanID: "gold"}, "Invalid plan selected"},
		{"lifetime cycle", UpgradeSubscriptionCommand{AccountID: 1, PlanID: "premium", BillingCycle: "lifetime"}, "Invalid billing cycle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockSubscriptionRepository{}
			uc := NewUpgradeSubscriptionUseCase(repo, &tierRecorder{}, entitlement.DefaultPlanTable(), nil, logger.Nop())

			_, err := uc.Execute(context.Background(), tt.cmd)

			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, 400, appErr.Code)
			assert.Equal(t, tt.wantMsg, appErr.Message)
			assert.Empty(t, repo.created)
		})
	}
}

func TestUpgradeSubscriptionUseCase_Execute_SupersedesActiveRow(t *testing.T) {
	now := time.Now().UTC()
	free := newFixtureSubscription(subscriptionFixture{
		id: 10, plan: entitlement.PlanFree, status: subscription.StatusActive,
		startDate: now.AddDate(0, -1, 0), endDate: now.AddDate(1, 0, 0),
	})
	repo := &mockSubscriptionRepository{
		GetActiveByAccountIDFunc: func(ctx context.Context, accountID uint) (*subscription.Subscription, error) {
			return free, nil
		},
	}
	accounts := &tierRecorder{}
	publisher := &recordingPublisher{}
	uc := NewUpgradeSubscriptionUseCase(repo, accounts, entitlement.DefaultPlanTable(), publisher, logger.Nop())

	result, err := uc.Execute(context.Background(), UpgradeSubscriptionCommand{
		AccountID:     1,
		PlanID:        "Premium",
		PaymentMethod: "stripe",
		BillingCycle:  "yearly",
	})

	require.NoError(t, err)
	assert.Equal(t, "Subscription upgraded successfully", result.Message)
	assert.Equal(t, subscription.StatusCancelled, free.Status())

	require.Len(t, repo.created, 1)
	created := repo.created[0]
	assert.Equal(t, entitlement.PlanPremium, created.PlanID())
	assert.Equal(t, 99.99, created.Amount())
	assert.Equal(t, created.StartDate().AddDate(1, 0, 0), created.EndDate())
	assert.Equal(t, 20, created.Features().PortfolioLimit)

	require.Len(t, accounts.updates, 1)
	assert.Equal(t, entitlement.PlanPremium, accounts.updates[0].tier)
	assert.Equal(t, created.EndDate(), accounts.updates[0].expiresAt)
	assert.Equal(t, []messaging.SubscriptionEventType{messaging.SubscriptionUpgraded}, publisher.types())
}

func TestUpgradeSubscriptionUseCase_Execute_DefaultsToMonthly(t *testing.T) {
	repo := &mockSubscriptionRepository{}
	uc := NewUpgradeSubscriptionUseCase(repo, &tierRecorder{}, entitlement.DefaultPlanTable(), nil, logger.Nop())

	result, err := uc.Execute(context.Background(), UpgradeSubscriptionCommand{AccountID: 1, PlanID: "enterprise"})

	require.NoError(t, err)
	assert.Equal(t, "monthly", result.Subscription.BillingCycle)
	assert.Equal(t, 29.99, result.Subscription.Amount)
}

func TestCancelSubscriptionUseCase_Execute(t *testing.T) {
	t.Run("no active row", func(t *testing.T) {
		uc := NewCancelSubscriptionUseCase(&mockSubscriptionRepository{}, &tierRecorder{}, entitlement.DefaultPlanTable(), nil, logger.Nop())

		_, err := uc.Execute(context.Background(), CancelSubscriptionCommand{AccountID: 1})

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, "No active subscription found", appErr.Message)
	})

	t.Run("free row", func(t *testing.T) {
		now := time.Now().UTC()
		repo := &mockSubscriptionRepository{
			GetActiveByAccountIDFunc: func(ctx context.Context, accountID uint) (*subscription.Subscription, error) {
				return newFixtureSubscription(subscriptionFixture{
					id: 1, plan: entitlement.PlanFree, status: subscription.StatusActive,
					startDate: now, endDate: now.AddDate(1, 0, 0),
				}), nil
			},
		}
		uc := NewCancelSubscriptionUseCase(repo, &tierRecorder{}, entitlement.DefaultPlanTable(), nil, logger.Nop())

		_, err := uc.Execute(context.Background(), CancelSubscriptionCommand{AccountID: 1})

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.Code)
		assert.Equal(t, "Cannot cancel free subscription", appErr.Message)
	})
}

func TestCancelSubscriptionUseCase_Execute_FreeRowStartsAtCancelledEnd(t *testing.T) {
	now := time.Now().UTC()
	paid := newFixtureSubscription(subscriptionFixture{
		id: 5, plan: entitlement.PlanPremium, status: subscription.StatusActive,
		startDate: now.AddDate(0, 0, -10), endDate: now.AddDate(0, 0, 20),
	})
	repo := &mockSubscriptionRepository{
		GetActiveByAccountIDFunc: func(ctx context.Context, accountID uint) (*subscription.Subscription, error) {
			return paid, nil
		},
	}
	accounts := &tierRecorder{}
	publisher := &recordingPublisher{err: assert.AnError}
	uc := NewCancelSubscriptionUseCase(repo, accounts, entitlement.DefaultPlanTable(), publisher, logger.Nop())

	result, err := uc.Execute(context.Background(), CancelSubscriptionCommand{AccountID: 1, Reason: "too expensive"})

	require.NoError(t, err, "publish failures must not fail the transition")
	assert.Equal(t, "cancelled", result.Subscription.Status)
	assert.False(t, paid.AutoRenew())
	assert.Equal(t, "too expensive", paid.Metadata().CancellationReason)

	require.Len(t, repo.created, 1)
	free := repo.created[0]
	assert.Equal(t, entitlement.PlanFree, free.PlanID())
	assert.Equal(t, paid.EndDate(), free.StartDate())
	assert.Equal(t, paid.EndDate().Add(subscription.FreePeriod), free.EndDate())

	require.Len(t, accounts.updates, 1)
	assert.Equal(t, entitlement.PlanFree, accounts.updates[0].tier)
}

func TestReactivateSubscriptionUseCase_Execute(t *testing.T) {
	t.Run("nothing cancelled", func(t *testing.T) {
		uc := NewReactivateSubscriptionUseCase(&mockSubscriptionRepository{}, &tierRecorder{}, entitlement.DefaultPlanTable(), nil, logger.Nop())

		_, err := uc.Execute(context.Background(), ReactivateSubscriptionCommand{AccountID: 1})

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, "No cancelled subscription found", appErr.Message)
	})

	t.Run("revives with plan override and supersedes interim free row", func(t *testing.T) {
		now := time.Now().UTC()
		cancelled := newFixtureSubscription(subscriptionFixture{
			id: 5, plan: entitlement.PlanPremium, status: subscription.StatusCancelled,
			startDate: now.AddDate(0, -1, 0), endDate: now.AddDate(0, 0, -1),
		})
		interim := newFixtureSubscription(subscriptionFixture{
			id: 6, plan: entitlement.PlanFree, status: subscription.StatusActive,
			startDate: now.AddDate(0, 0, -1), endDate: now.AddDate(1, 0, 0),
		})
		repo := &mockSubscriptionRepository{
			GetLatestCancelledByAccountIDFunc: func(ctx context.Context, accountID uint) (*subscription.Subscription, error) {
				return cancelled, nil
			},
			GetActiveByAccountIDFunc: func(ctx context.Context, accountID uint) (*subscription.Subscription, error) {
				return interim, nil
			},
		}
		accounts := &tierRecorder{}
		uc := NewReactivateSubscriptionUseCase(repo, accounts, entitlement.DefaultPlanTable(), nil, logger.Nop())

		result, err := uc.Execute(context.Background(), ReactivateSubscriptionCommand{AccountID: 1, PlanID: "enterprise"})

		require.NoError(t, err)
		assert.Equal(t, "active", result.Subscription.Status)
		assert.Equal(t, "enterprise", result.Subscription.PlanID)
		assert.Equal(t, entitlement.Unlimited, cancelled.Features().PortfolioLimit)
		assert.WithinDuration(t, now.Add(subscription.ReactivationPeriod), cancelled.EndDate(), time.Minute)
		assert.Equal(t, subscription.StatusCancelled, interim.Status())

		require.Len(t, accounts.updates, 1)
		assert.Equal(t, entitlement.PlanEnterprise, accounts.updates[0].tier)
	})
}
