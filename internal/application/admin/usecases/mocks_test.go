package usecases

import (
	"context"
	"time"

	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/domain/subscription"
)

// mockAccountRepository embeds account.Repository; calls to methods without
// a Func field panic, which flags unexpected repository use.
type mockAccountRepository struct {
	account.Repository

	GetByIDFunc     func(ctx context.Context, id uint) (*account.Account, error)
	UpdateFunc      func(ctx context.Context, a *account.Account) error
	ListFunc        func(ctx context.Context, filter account.ListFilter) ([]*account.Account, int64, error)
	CountByTierFunc func(ctx context.Context) (map[entitlement.PlanID]int64, error)
}

func (m *mockAccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAccountRepository) List(ctx context.Context, filter account.ListFilter) ([]*account.Account, int64, error) {
	return m.ListFunc(ctx, filter)
}

func (m *mockAccountRepository) CountByTier(ctx context.Context) (map[entitlement.PlanID]int64, error) {
	return m.CountByTierFunc(ctx)
}

type mockSubscriptionRepository struct {
	subscription.Repository

	GetCurrentByAccountIDFunc func(ctx context.Context, accountID uint) (*subscription.Subscription, error)
	CountByStatusFunc         func(ctx context.Context) (map[subscription.Status]int64, error)
	ListActiveFunc            func(ctx context.Context) ([]*subscription.Subscription, error)
	ListCreatedSinceFunc      func(ctx context.Context, since time.Time) ([]*subscription.Subscription, error)
	CountCancelledSinceFunc   func(ctx context.Context, since time.Time) (int64, error)
}

func (m *mockSubscriptionRepository) GetCurrentByAccountID(ctx context.Context, accountID uint) (*subscription.Subscription, error) {
	return m.GetCurrentByAccountIDFunc(ctx, accountID)
}

func (m *mockSubscriptionRepository) CountByStatus(ctx context.Context) (map[subscription.Status]int64, error) {
	return m.CountByStatusFunc(ctx)
}

func (m *mockSubscriptionRepository) ListActive(ctx context.Context) ([]*subscription.Subscription, error) {
	return m.ListActiveFunc(ctx)
}

func (m *mockSubscriptionRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]*subscription.Subscription, error) {
	return m.ListCreatedSinceFunc(ctx, since)
}

func (m *mockSubscriptionRepository) CountCancelledSince(ctx context.Context, since time.Time) (int64, error) {
	return m.CountCancelledSinceFunc(ctx, since)
}

type fixedPortfolioCounter struct {
	total    int64
	perOwner map[uint]int64
}

func (c fixedPortfolioCounter) CountAll(ctx context.Context) (int64, error) {
	return c.total, nil
}

func (c fixedPortfolioCounter) Count(ctx context.Context, ownerID uint) (int64, error) {
	return c.perOwner[ownerID], nil
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func newTestAccount(id uint, active bool) *account.Account {
	now := time.Now().UTC()
	acc, err := account.ReconstructAccount(account.ReconstructParams{
		ID:           id,
		Username:     "jane",
		Email:        "jane@example.com",
		Subdomain:    "jane",
		PasswordHash: "hash",
		FullName:     "Jane Doe",
		IsActive:     active,
		Tier:         entitlement.PlanFree,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		panic(err)
	}
	return acc
}

func newTestSubscription(id uint, plan entitlement.PlanID, cycle subscription.BillingCycle, amount float64, createdAt time.Time) *subscription.Subscription {
	sub, err := subscription.ReconstructSubscription(subscription.ReconstructParams{
		ID:            id,
		AccountID:     1,
		PlanID:        plan,
		Status:        subscription.StatusActive,
		StartDate:     createdAt,
		EndDate:       createdAt.AddDate(1, 0, 0),
		PaymentMethod: subscription.PaymentStripe,
		Amount:        amount,
		Currency:      "USD",
		BillingCycle:  cycle,
		Features:      entitlement.DefaultPlanTable().Features(plan),
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	})
	if err != nil {
		panic(err)
	}
	return sub
}
