package http

import (
	"gorm.io/gorm"

	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/domain/subscription"
	"github.com/folio-hq/folio/internal/infrastructure/repository"
	"github.com/folio-hq/folio/internal/shared/logger"
)

// repositories holds all repository instances created during initialization.
type repositories struct {
	accounts      account.Repository
	subscriptions subscription.Repository
	resources     *repository.ResourceRepositories
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		accounts:      repository.NewAccountRepository(db, log),
		subscriptions: repository.NewSubscriptionRepository(db, log),
		resources:     repository.NewResourceRepositories(db, log),
	}
}
