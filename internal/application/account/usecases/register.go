package usecases

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/folio-hq/folio/internal/application/account/dto"
	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/domain/tenancy"
	"github.com/folio-hq/folio/internal/infrastructure/email"
	apperrors "github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/goroutine"
	"github.com/folio-hq/folio/internal/shared/logger"
)

type RegisterCommand struct {
	Username  string
	Email     string
	Password  string
	FullName  string
	Subdomain string
}

type RegisterUseCase struct {
	accounts   account.Repository
	hasher     PasswordHasher
	tokens     TokenIssuer
	mailer     Mailer
	reserved   tenancy.ReservedSet
	rootDomain string
	logger     logger.Interface
}

func NewRegisterUseCase(
	accounts account.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	mailer Mailer,
	reserved tenancy.ReservedSet,
	rootDomain string,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		accounts:   accounts,
		hasher:     hasher,
		tokens:     tokens,
		mailer:     mailer,
		reserved:   reserved,
		rootDomain: rootDomain,
		logger:     logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.AuthDTO, error) {
	cmd.Email = strings.ToLower(strings.TrimSpace(cmd.Email))
	cmd.Username = strings.TrimSpace(cmd.Username)

	if err := uc.checkUnique(ctx, cmd); err != nil {
		return nil, err
	}

	if err := tenancy.ValidateSubdomain(cmd.Subdomain, uc.reserved); err != nil {
		return nil, subdomainError(err)
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, apperrors.NewInternalError("Failed to create account")
	}

	acc, err := account.NewAccount(cmd.Username, cmd.Email, cmd.Subdomain, hash, norm.NFC.String(cmd.FullName))
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	token, err := verificationToken()
	if err != nil {
		return nil, apperrors.NewInternalError("Failed to create account")
	}
	acc.SetVerificationToken(token)

	if err := uc.accounts.Create(ctx, acc); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewValidationError("User already exists")
		}
		uc.logger.Errorw("failed to create account", "error", err, "username", cmd.Username)
		return nil, apperrors.NewInternalError("Failed to create account")
	}

	jwt, expiresAt, err := uc.tokens.Issue(acc.ID())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "account_id", acc.ID())
		return nil, apperrors.NewInternalError("Failed to create account")
	}

	uc.logger.Infow("account registered", "account_id", acc.ID(), "subdomain", acc.Subdomain())
	uc.sendWelcome(acc)

	return &dto.AuthDTO{Token: jwt, ExpiresAt: expiresAt, User: dto.ToUserDTO(acc)}, nil
}

// checkUnique reports the first clash in email, username, subdomain order.
func (uc *RegisterUseCase) checkUnique(ctx context.Context, cmd RegisterCommand) error {
	existing, err := uc.accounts.GetByEmail(ctx, cmd.Email)
	if err != nil {
		return uc.lookupFailed(err)
	}
	if existing != nil {
		return apperrors.NewValidationError("Email already exists")
	}

	existing, err = uc.accounts.GetByUsername(ctx, cmd.Username)
	if err != nil {
		return uc.lookupFailed(err)
	}
	if existing != nil {
		return apperrors.NewValidationError("Username already exists")
	}

	existing, err = uc.accounts.GetBySubdomain(ctx, cmd.Subdomain)
	if err != nil {
		return uc.lookupFailed(err)
	}
	if existing != nil {
		return apperrors.NewValidationError("Subdomain already exists")
	}
	return nil
}

func (uc *RegisterUseCase) lookupFailed(err error) error {
	uc.logger.Errorw("failed to check account uniqueness", "error", err)
	return apperrors.NewInternalError("Failed to create account")
}

func (uc *RegisterUseCase) sendWelcome(acc *account.Account) {
	if uc.mailer == nil {
		return
	}
	msg := email.WelcomeMessage{
		Email:             acc.Email(),
		FullName:          acc.FullName(),
		SiteURL:           fmt.Sprintf("https://%s.%s", acc.Subdomain(), uc.rootDomain),
		VerificationToken: acc.EmailVerificationToken(),
	}
	goroutine.Go(uc.logger, "welcome-email", func() {
		if err := uc.mailer.SendWelcome(msg); err != nil {
			uc.logger.Warnw("failed to send welcome email", "error", err, "account_id", acc.ID())
		}
	})
}

func subdomainError(err error) error {
	switch {
	case errors.Is(err, tenancy.ErrReservedSubdomain):
		return apperrors.NewValidationError("This subdomain is reserved")
	default:
		return apperrors.NewValidationError("Subdomain can only contain letters, numbers, and hyphens")
	}
}

func verificationToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate verification token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
