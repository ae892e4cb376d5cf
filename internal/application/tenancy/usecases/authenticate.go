package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/infrastructure/auth"
	apperrors "github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

// TokenVerifier checks a session token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Principal is the authenticated caller attached to a request.
type Principal struct {
	AccountID uint
	Email     string
	Tier      entitlement.PlanID
}

// AuthenticateUseCase turns an Authorization header into a Principal. It
// never writes to storage.
type AuthenticateUseCase struct {
	accounts account.Repository
	tokens   TokenVerifier
	logger   logger.Interface
}

func NewAuthenticateUseCase(accounts account.Repository, tokens TokenVerifier, logger logger.Interface) *AuthenticateUseCase {
	return &AuthenticateUseCase{
		accounts: accounts,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute returns an *apperrors.AuthError for every rejection.
func (uc *AuthenticateUseCase) Execute(ctx context.Context, authorization string) (*Principal, error) {
	token, ok := bearerToken(authorization)
	if !ok {
		return nil, apperrors.NewCredentialMissingError()
	}

	claims, err := uc.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, apperrors.NewCredentialExpiredError()
		}
		return nil, apperrors.NewCredentialInvalidError()
	}

	acc, err := uc.accounts.GetByID(ctx, claims.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to load principal", "error", err, "account_id", claims.AccountID)
		return nil, apperrors.NewInternalError("Authentication failed")
	}
	if acc == nil {
		return nil, apperrors.NewAccountNotFoundError()
	}
	if !acc.IsActive() {
		return nil, apperrors.NewAccountDeactivatedError()
	}

	return &Principal{
		AccountID: acc.ID(),
		Email:     acc.Email(),
		Tier:      acc.Tier(),
	}, nil
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
