package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/domain/subscription"
	"github.com/folio-hq/folio/internal/infrastructure/persistence/models"
)

func TestSubscriptionMapper_SnapshotSurvives(t *testing.T) {
	m := NewSubscriptionMapper()
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	sub, err := subscription.NewSubscription(subscription.NewParams{
		AccountID:    4,
		PlanID:       entitlement.PlanEnterprise,
		StartDate:    start,
		EndDate:      subscription.CycleYearly.AddTo(start),
		Payment:      subscription.Payment{Method: subscription.PaymentBankTransfer, ID: "wire-9"},
		Amount:       299.99,
		BillingCycle: subscription.CycleYearly,
		Features:     entitlement.DefaultPlanTable().Features(entitlement.PlanEnterprise),
	})
	require.NoError(t, err)
	require.NoError(t, sub.SetID(12))
	sub.SetMetadata(subscription.Metadata{PromoCode: "LAUNCH"})

	model, err := m.ToModel(sub)
	require.NoError(t, err)
	assert.JSONEq(t, `{"promoCode":"LAUNCH"}`, string(model.Metadata))

	back, err := m.ToEntity(model)
	require.NoError(t, err)
	assert.Equal(t, entitlement.Unlimited, back.Features().AwardLimit)
	assert.True(t, back.Features().PrioritySupport)
	assert.Equal(t, "LAUNCH", back.Metadata().PromoCode)
	assert.Equal(t, subscription.PaymentBankTransfer, back.PaymentMethod())
}

func TestSubscriptionMapper_EmptyMetadataStaysNull(t *testing.T) {
	m := NewSubscriptionMapper()
	sub, err := subscription.NewFreeSubscription(1, time.Now(), entitlement.Features{PortfolioLimit: 3})
	require.NoError(t, err)

	model, err := m.ToModel(sub)
	require.NoError(t, err)
	assert.Nil(t, model.Metadata)
}

func TestSubscriptionMapper_RejectsBadStatus(t *testing.T) {
	_, err := NewSubscriptionMapper().ToEntity(&models.SubscriptionModel{ID: 1, AccountID: 1, Status: "paused"})
	assert.Error(t, err)
}

func TestAccountMapper_UnknownTierFallsBackToFree(t *testing.T) {
	entity, err := NewAccountMapper().ToEntity(&models.AccountModel{ID: 2, Tier: "platinum", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, entitlement.PlanFree, entity.Tier())
}
