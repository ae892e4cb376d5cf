package usecases

import (
	"context"
	"time"

	"github.com/folio-hq/folio/internal/infrastructure/email"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type TokenIssuer interface {
	Issue(accountID uint) (string, time.Time, error)
}

type Mailer interface {
	SendWelcome(msg email.WelcomeMessage) error
}

// SiteInvalidator drops an account's cached public site.
type SiteInvalidator interface {
	Invalidate(ctx context.Context, accountID uint) error
}
