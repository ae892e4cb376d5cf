package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/infrastructure/persistence/models"
	"github.com/folio-hq/folio/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.AccountModel{}, &models.SubscriptionModel{}))
	require.NoError(t, db.AutoMigrate(ResourceModels()...))
	return db
}

func createTestAccount(t *testing.T, repo account.Repository, username, subdomain string) *account.Account {
	t.Helper()
	a, err := account.NewAccount(username, username+"@example.com", subdomain, "hash", username)
	require.NoError(t, err)
	require.NoError(t, repo.Create(t.Context(), a))
	return a
}

func testLogger() logger.Interface {
	return logger.Nop()
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
