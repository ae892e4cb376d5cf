package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/folio-hq/folio/internal/application/account/dto"
	"github.com/folio-hq/folio/internal/domain/account"
	apperrors "github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	accounts account.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(accounts account.Repository, hasher PasswordHasher, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthDTO, error) {
	acc, err := uc.accounts.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(cmd.Email)))
	if err != nil {
		uc.logger.Errorw("failed to get account by email", "error", err)
		return nil, apperrors.NewInternalError("Login failed")
	}
	if acc == nil {
		return nil, apperrors.NewInvalidCredentialsError()
	}

	// Deactivation is reported before the password check.
	if !acc.IsActive() {
		return nil, apperrors.NewAccountDeactivatedError()
	}

	if err := uc.hasher.Verify(cmd.Password, acc.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "account_id", acc.ID())
		return nil, apperrors.NewInvalidCredentialsError()
	}

	acc.RecordLogin(time.Now().UTC())
	if err := uc.accounts.Update(ctx, acc); err != nil {
		uc.logger.Errorw("failed to record login", "error", err, "account_id", acc.ID())
		return nil, apperrors.NewInternalError("Login failed")
	}

	token, expiresAt, err := uc.tokens.Issue(acc.ID())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "account_id", acc.ID())
		return nil, apperrors.NewInternalError("Login failed")
	}

	return &dto.AuthDTO{Token: token, ExpiresAt: expiresAt, User: dto.ToUserDTO(acc)}, nil
}
