package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-hq/folio/internal/domain/account"
	apperrors "github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

func TestLoginUseCase_Execute(t *testing.T) {
	tests := []struct {
		name     string
		found    *account.Account
		password string
		wantMsg  string
	}{
		{name: "unknown email", found: nil, password: "secret123", wantMsg: "Invalid credentials"},
		{name: "deactivated before password check", found: newTestAccount(1, false), password: "wrong", wantMsg: "Account has been deactivated"},
		{name: "wrong password", found: newTestAccount(1, true), password: "wrong", wantMsg: "Invalid credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockAccountRepository{
				GetByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
					return tt.found, nil
				},
			}
			uc := NewLoginUseCase(repo, plainHasher{}, &stubTokens{}, logger.Nop())

			_, err := uc.Execute(context.Background(), LoginCommand{Email: "jane@example.com", Password: tt.password})

			require.Error(t, err)
			authErr := apperrors.GetAuthError(err)
			require.NotNil(t, authErr)
			assert.Equal(t, tt.wantMsg, authErr.Message)
		})
	}
}

func TestLoginUseCase_Execute_RecordsLogin(t *testing.T) {
	acc := newTestAccount(5, true)
	var updated *account.Account
	repo := &mockAccountRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
			assert.Equal(t, "jane@example.com", email)
			return acc, nil
		},
		UpdateFunc: func(ctx context.Context, a *account.Account) error {
			updated = a
			return nil
		},
	}
	uc := NewLoginUseCase(repo, plainHasher{}, &stubTokens{}, logger.Nop())

	result, err := uc.Execute(context.Background(), LoginCommand{Email: " JANE@example.com ", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "token", result.Token)
	require.NotNil(t, updated)
	assert.NotNil(t, updated.LastLoginAt())
}
