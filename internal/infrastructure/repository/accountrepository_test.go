package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/domain/entitlement"
)

func TestAccountRepository_Lookups(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db, testLogger())
	ctx := context.Background()

	jane := createTestAccount(t, repo, "jane", "Jane")
	assert.NotZero(t, jane.ID())

	t.Run("by id", func(t *testing.T) {
		found, err := repo.GetByID(ctx, jane.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "jane", found.Subdomain())
	})

	t.Run("by email is case-insensitive on input", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "JANE@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, jane.ID(), found.ID())
	})

	t.Run("subdomain match ignores case", func(t *testing.T) {
		found, err := repo.GetActiveBySubdomain(ctx, "JANE")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, jane.ID(), found.ID())
	})

	t.Run("missing returns nil without error", func(t *testing.T) {
		found, err := repo.GetByUsername(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("inactive accounts are not tenants", func(t *testing.T) {
		jane.SetActive(false)
		require.NoError(t, repo.Update(ctx, jane))

		found, err := repo.GetActiveBySubdomain(ctx, "jane")
		require.NoError(t, err)
		assert.Nil(t, found)

		found, err = repo.GetBySubdomain(ctx, "jane")
		require.NoError(t, err)
		assert.NotNil(t, found)
	})
}

func TestAccountRepository_UniqueSubdomain(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db, testLogger())

	createTestAccount(t, repo, "first", "shared")

	dup, err := account.NewAccount("second", "second@example.com", "shared", "hash", "")
	require.NoError(t, err)
	assert.Error(t, repo.Create(context.Background(), dup))
}

func TestAccountRepository_UpdateTier(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db, testLogger())
	ctx := context.Background()

	a := createTestAccount(t, repo, "tiered", "tiered")
	expires := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)

	require.NoError(t, repo.UpdateTier(ctx, a.ID(), entitlement.PlanPremium, &expires))

	found, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, entitlement.PlanPremium, found.Tier())
	require.NotNil(t, found.TierExpiresAt())
	assert.True(t, expires.Equal(*found.TierExpiresAt()))

	assert.ErrorIs(t, repo.UpdateTier(ctx, 9999, entitlement.PlanFree, nil), account.ErrAccountNotFound)
}

func TestAccountRepository_ListAndCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db, testLogger())
	ctx := context.Background()

	createTestAccount(t, repo, "alice", "alice")
	bob := createTestAccount(t, repo, "bob", "bob")
	carol := createTestAccount(t, repo, "carol", "carol")

	require.NoError(t, repo.UpdateTier(ctx, bob.ID(), entitlement.PlanPremium, ptrTime(time.Now().Add(time.Hour))))
	carol.SetActive(false)
	require.NoError(t, repo.Update(ctx, carol))

	t.Run("search", func(t *testing.T) {
		items, total, err := repo.List(ctx, account.ListFilter{Page: 1, PageSize: 10, Search: "BO"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		assert.Equal(t, "bob", items[0].Username())
	})

	t.Run("tier and status filters", func(t *testing.T) {
		active := true
		_, total, err := repo.List(ctx, account.ListFilter{Page: 1, PageSize: 10, Tier: "free", Active: &active})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("paging", func(t *testing.T) {
		items, total, err := repo.List(ctx, account.ListFilter{Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, items, 1)
	})

	t.Run("count by tier", func(t *testing.T) {
		counts, err := repo.CountByTier(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), counts[entitlement.PlanFree])
		assert.Equal(t, int64(1), counts[entitlement.PlanPremium])
	})
}
