package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/domain/subscription"
	"github.com/folio-hq/folio/internal/infrastructure/messaging"
)

type mockSubscriptionRepository struct {
	CreateFunc                        func(ctx context.Context, sub *subscription.Subscription) error
	UpdateFunc                        func(ctx context.Context, sub *subscription.Subscription) error
	GetActiveByAccountIDFunc          func(ctx context.Context, accountID uint) (*subscription.Subscription, error)
	GetCurrentByAccountIDFunc         func(ctx context.Context, accountID uint) (*subscription.Subscription, error)
	GetLatestCancelledByAccountIDFunc func(ctx context.Context, accountID uint) (*subscription.Subscription, error)
	ListByAccountIDFunc               func(ctx context.Context, accountID uint, limit int) ([]*subscription.Subscription, error)

	created []*subscription.Subscription
	updated []*subscription.Subscription
	nextID  uint
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sub)
	}
	m.nextID++
	m.created = append(m.created, sub)
	return sub.SetID(100 + m.nextID)
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sub)
	}
	m.updated = append(m.updated, sub)
	return nil
}

func (m *mockSubscriptionRepository) GetActiveByAccountID(ctx context.Context, accountID uint) (*subscription.Subscription, error) {
	if m.GetActiveByAccountIDFunc != nil {
		return m.GetActiveByAccountIDFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) GetCurrentByAccountID(ctx context.Context, accountID uint) (*subscription.Subscription, error) {
	if m.GetCurrentByAccountIDFunc != nil {
		return m.GetCurrentByAccountIDFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) GetLatestCancelledByAccountID(ctx context.Context, accountID uint) (*subscription.Subscription, error) {
	if m.GetLatestCancelledByAccountIDFunc != nil {
		return m.GetLatestCancelledByAccountIDFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) GetLatestByAccountID(ctx context.Context, accountID uint) (*subscription.Subscription, error) {
	return nil, nil
}

func (m *mockSubscriptionRepository) ListByAccountID(ctx context.Context, accountID uint, limit int) ([]*subscription.Subscription, error) {
	if m.ListByAccountIDFunc != nil {
		return m.ListByAccountIDFunc(ctx, accountID, limit)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) CountByStatus(ctx context.Context) (map[subscription.Status]int64, error) {
	return map[subscription.Status]int64{}, nil
}

func (m *mockSubscriptionRepository) ListActive(ctx context.Context) ([]*subscription.Subscription, error) {
	return nil, nil
}

func (m *mockSubscriptionRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]*subscription.Subscription, error) {
	return nil, nil
}

func (m *mockSubscriptionRepository) CountCancelledSince(ctx context.Context, since time.Time) (int64, error) {
	return 0, nil
}

type tierUpdate struct {
	accountID uint
	tier      entitlement.PlanID
	expiresAt time.Time
}

// tierRecorder implements account.Repository and only records tier syncs.
type tierRecorder struct {
	account.Repository
	updates []tierUpdate
}

func (r *tierRecorder) UpdateTier(ctx context.Context, id uint, tier entitlement.PlanID, expiresAt *time.Time) error {
	r.updates = append(r.updates, tierUpdate{accountID: id, tier: tier, expiresAt: *expiresAt})
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []messaging.SubscriptionEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event messaging.SubscriptionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []messaging.SubscriptionEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]messaging.SubscriptionEventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type subscriptionFixture struct {
	id        uint
	plan      entitlement.PlanID
	status    subscription.Status
	startDate time.Time
	endDate   time.Time
	createdAt time.Time
}

func newFixtureSubscription(f subscriptionFixture) *subscription.Subscription {
	if f.createdAt.IsZero() {
		f.createdAt = f.startDate
	}
	sub, err := subscription.ReconstructSubscription(subscription.ReconstructParams{
		ID:            f.id,
		AccountID:     1,
		PlanID:        f.plan,
		Status:        f.status,
		StartDate:     f.startDate,
		EndDate:       f.endDate,
		AutoRenew:     true,
		PaymentMethod: subscription.PaymentStripe,
		BillingCycle:  subscription.CycleMonthly,
		Features:      entitlement.DefaultPlanTable().Features(f.plan),
		CreatedAt:     f.createdAt,
		UpdatedAt:     f.createdAt,
	})
	if err != nil {
		panic(err)
	}
	return sub
}
