package usecases

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/infrastructure/email"
)

type mockAccountRepository struct {
	CreateFunc               func(ctx context.Context, a *account.Account) error
	UpdateFunc               func(ctx context.Context, a *account.Account) error
	GetByIDFunc              func(ctx context.Context, id uint) (*account.Account, error)
	GetByEmailFunc           func(ctx context.Context, email string) (*account.Account, error)
	GetByUsernameFunc        func(ctx context.Context, username string) (*account.Account, error)
	GetBySubdomainFunc       func(ctx context.Context, subdomain string) (*account.Account, error)
	GetActiveBySubdomainFunc func(ctx context.Context, subdomain string) (*account.Account, error)
	UpdateTierFunc           func(ctx context.Context, id uint, tier entitlement.PlanID, expiresAt *time.Time) error
}

func (m *mockAccountRepository) Create(ctx context.Context, a *account.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return a.SetID(1)
}

func (m *mockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockAccountRepository) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockAccountRepository) GetBySubdomain(ctx context.Context, subdomain string) (*account.Account, error) {
	if m.GetBySubdomainFunc != nil {
		return m.GetBySubdomainFunc(ctx, subdomain)
	}
	return nil, nil
}

func (m *mockAccountRepository) GetActiveBySubdomain(ctx context.Context, subdomain string) (*account.Account, error) {
	if m.GetActiveBySubdomainFunc != nil {
		return m.GetActiveBySubdomainFunc(ctx, subdomain)
	}
	return nil, nil
}

func (m *mockAccountRepository) UpdateTier(ctx context.Context, id uint, tier entitlement.PlanID, expiresAt *time.Time) error {
	if m.UpdateTierFunc != nil {
		return m.UpdateTierFunc(ctx, id, tier, expiresAt)
	}
	return nil
}

func (m *mockAccountRepository) List(ctx context.Context, filter account.ListFilter) ([]*account.Account, int64, error) {
	return nil, 0, nil
}

func (m *mockAccountRepository) CountByTier(ctx context.Context) (map[entitlement.PlanID]int64, error) {
	return map[entitlement.PlanID]int64{}, nil
}

// plainHasher stores passwords with a prefix so tests can reason about them.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return errMismatch
	}
	return nil
}

var errMismatch = errors.New("mismatch")

type stubTokens struct {
	issued []uint
}

func (s *stubTokens) Issue(accountID uint) (string, time.Time, error) {
	s.issued = append(s.issued, accountID)
	return "token", time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC), nil
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []email.WelcomeMessage
	done chan struct{}
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{done: make(chan struct{}, 1)}
}

func (m *recordingMailer) SendWelcome(msg email.WelcomeMessage) error {
	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()
	m.done <- struct{}{}
	return nil
}

type recordingInvalidator struct {
	ids []uint
}

func (r *recordingInvalidator) Invalidate(ctx context.Context, accountID uint) error {
	r.ids = append(r.ids, accountID)
	return nil
}

func newTestAccount(id uint, active bool) *account.Account {
	now := time.Now().UTC()
	acc, err := account.ReconstructAccount(account.ReconstructParams{
		ID:           id,
		Username:     "jane",
		Email:        "jane@example.com",
		Subdomain:    "jane",
		PasswordHash: "hashed:secret123",
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
