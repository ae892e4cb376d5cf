package account

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/domain/tenancy"
)

func newTestAccount(t *testing.T) *Account {
	t.Helper()
	a, err := NewAccount("jane", "Jane@Example.com", "Jane-Doe", "hash", " Jane Doe ")
	require.NoError(t, err)
	require.NoError(t, a.SetID(7))
	return a
}

func TestNewAccount(t *testing.T) {
	a := newTestAccount(t)

	assert.Equal(t, uint(7), a.ID())
	assert.Equal(t, "jane@example.com", a.Email())
	assert.Equal(t, "jane-doe", a.Subdomain())
	assert.Equal(t, "Jane Doe", a.FullName())
	assert.True(t, a.IsActive())
	assert.Equal(t, entitlement.PlanFree, a.Tier())
	assert.Nil(t, a.TierExpiresAt())
}

func TestNewAccount_Invalid(t *testing.T) {
	_, err := NewAccount("", "a@b.c", "sub", "hash", "")
	assert.Error(t, err)

	_, err = NewAccount("u", "a@b.c", "bad_sub", "hash", "")
	assert.ErrorIs(t, err, tenancy.ErrInvalidSubdomain)

	_, err = NewAccount("u", "a@b.c", "sub", "", "")
	assert.Error(t, err)
}

func TestAccount_SetID(t *testing.T) {
	a := newTestAccount(t)
	assert.Error(t, a.SetID(8))
}

func TestAccount_DowngradeIfExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("expired premium downgrades once", func(t *testing.T) {
		a := newTestAccount(t)
		a.SyncTier(entitlement.PlanPremium, now.Add(-time.Hour))

		require.True(t, a.DowngradeIfExpired(now))
		assert.Equal(t, entitlement.PlanFree, a.Tier())
		require.NotNil(t, a.TierExpiresAt())
		assert.Equal(t, now.Add(TierRenewal), *a.TierExpiresAt())

		assert.False(t, a.DowngradeIfExpired(now.Add(time.Minute)))
		assert.Equal(t, now.Add(TierRenewal), *a.TierExpiresAt())
	})

	t.Run("valid premium untouched", func(t *testing.T) {
		a := newTestAccount(t)
		a.SyncTier(entitlement.PlanPremium, now.Add(time.Hour))
		assert.False(t, a.DowngradeIfExpired(now))
		assert.Equal(t, entitlement.PlanPremium, a.Tier())
	})

	t.Run("free tier with past expiry untouched", func(t *testing.T) {
		a := newTestAccount(t)
		a.SyncTier(entitlement.PlanFree, now.Add(-time.Hour))
		assert.False(t, a.DowngradeIfExpired(now))
	})

	t.Run("paid tier without expiry untouched", func(t *testing.T) {
		a, err := ReconstructAccount(ReconstructParams{ID: 1, Tier: entitlement.PlanEnterprise, IsActive: true})
		require.NoError(t, err)
		assert.False(t, a.DowngradeIfExpired(now))
	})
}

func TestAccount_UpdateProfile(t *testing.T) {
	a := newTestAccount(t)
	name := "J. Doe"
	blank := "  "
	pic := "/uploads/me.png"

	a.UpdateProfile(&name, &blank, &pic)

	assert.Equal(t, "J. Doe", a.FullName())
	assert.Equal(t, "jane@example.com", a.Email())
	assert.Equal(t, "/uploads/me.png", a.ProfilePicture())
}

func TestReconstructAccount(t *testing.T) {
	_, err := ReconstructAccount(ReconstructParams{})
	assert.Error(t, err)

	a, err := ReconstructAccount(ReconstructParams{ID: 3, Tier: "gold"})
	require.NoError(t, err)
	assert.Equal(t, entitlement.PlanFree, a.Tier())
}
