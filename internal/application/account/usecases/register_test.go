package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/domain/tenancy"
	apperrors "github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

func newRegisterUseCase(repo *mockAccountRepository, mailer Mailer) (*RegisterUseCase, *stubTokens) {
	tokens := &stubTokens{}
	uc := NewRegisterUseCase(
		repo,
		plainHasher{},
		tokens,
		mailer,
		tenancy.NewReservedSet(tenancy.DefaultReservedSubdomains),
		"folio.local",
		logger.Nop(),
	)
	return uc, tokens
}

func validRegisterCommand() RegisterCommand {
	return RegisterCommand{
		Username:  "jane",
		Email:     "Jane@Example.com",
		Password:  "secret123",
		FullName:  "Jane Doe",
		Subdomain: "jane",
	}
}

func TestRegisterUseCase_Execute_Success(t *testing.T) {
	var created *account.Account
	repo := &mockAccountRepository{
		CreateFunc: func(ctx context.Context, a *account.Account) error {
			created = a
			return a.SetID(42)
		},
	}
	mailer := newRecordingMailer()
	uc, tokens := newRegisterUseCase(repo, mailer)

	result, err := uc.Execute(context.Background(), validRegisterCommand())

	require.NoError(t, err)
	assert.Equal(t, "token", result.Token)
	assert.Equal(t, uint(42), result.User.ID)
	assert.Equal(t, "jane@example.com", result.User.Email)
	assert.Equal(t, "free", result.User.Subscription)
	assert.Equal(t, []uint{42}, tokens.issued)

	require.NotNil(t, created)
	assert.Equal(t, "hashed:secret123", created.PasswordHash())
	assert.Equal(t, entitlement.PlanFree, created.Tier())
	assert.Len(t, created.EmailVerificationToken(), 64)

	select {
	case <-mailer.done:
	case <-time.After(time.Second):
		t.Fatal("welcome email was not sent")
	}
	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "https://jane.folio.local", mailer.sent[0].SiteURL)
}

func TestRegisterUseCase_Execute_UniquenessOrder(t *testing.T) {
	taken := newTestAccount(7, true)

	tests := []struct {
		name    string
		repo    *mockAccountRepository
		wantMsg string
	}{
		{
			name: "email checked first",
			repo: &mockAccountRepository{
				GetByEmailFunc:     func(ctx context.Context, email string) (*account.Account, error) { return taken, nil },
				GetByUsernameFunc:  func(ctx context.Context, username string) (*account.Account, error) { return taken, nil },
				GetBySubdomainFunc: func(ctx context.Context, subdomain string) (*account.Account, error) { return taken, nil },
			},
			wantMsg: "Email already exists",
		},
		{
			name: "username before subdomain",
			repo: &mockAccountRepository{
				GetByUsernameFunc:  func(ctx context.Context, username string) (*account.Account, error) { return taken, nil },
				GetBySubdomainFunc: func(ctx context.Context, subdomain string) (*account.Account, error) { return taken, nil },
			},
			wantMsg: "Username already exists",
		},
		{
			name: "subdomain",
			repo: &mockAccountRepository{
				GetBySubdomainFunc: func(ctx context.Context, subdomain string) (*account.Account, error) { return taken, nil },
			},
			wantMsg: "Subdomain already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newRegisterUseCase(tt.repo, nil)

			_, err := uc.Execute(context.Background(), validRegisterCommand())

			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, 400, appErr.Code)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}

func TestRegisterUseCase_Execute_SubdomainRules(t *testing.T) {
	tests := []struct {
		name      string
		subdomain string
		wantMsg   string
	}{
		{"malformed", "jane_doe", "Subdomain can only contain letters, numbers, and hyphens"},
		{"reserved", "Admin", "This subdomain is reserved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newRegisterUseCase(&mockAccountRepository{}, nil)
			cmd := validRegisterCommand()
			cmd.Subdomain = tt.subdomain

			_, err := uc.Execute(context.Background(), cmd)

			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}

func TestRegisterUseCase_Execute_CreateFails(t *testing.T) {
	repo := &mockAccountRepository{
		CreateFunc: func(ctx context.Context, a *account.Account) error {
			return assert.AnError
		},
	}
	uc, _ := newRegisterUseCase(repo, nil)

	_, err := uc.Execute(context.Background(), validRegisterCommand())

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 500, appErr.Code)
}
