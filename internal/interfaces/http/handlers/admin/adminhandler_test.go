package admin

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-hq/folio/internal/application/admin/dto"
	"github.com/folio-hq/folio/internal/application/admin/usecases"
	"github.com/folio-hq/folio/internal/interfaces/http/handlers/testutil"
	"github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

type stubStatistics struct{ stats *dto.StatisticsDTO }

func (s stubStatistics) Execute(ctx context.Context) (*dto.StatisticsDTO, error) { return s.stats, nil }

type stubListUsers struct {
	got *usecases.ListUsersCommand
}

func (s *stubListUsers) Execute(ctx context.Context, cmd usecases.ListUsersCommand) (*dto.UserListDTO, error) {
	s.got = &cmd
	return &dto.UserListDTO{}, nil
}

type stubUserDetails struct{}

func (stubUserDetails) Execute(ctx context.Context, accountID uint) (*dto.UserDetailsDTO, error) {
	return nil, errors.NewNotFoundError("User not found")
}

type stubUserStatus struct {
	got *usecases.UpdateUserStatusCommand
}

func (s *stubUserStatus) Execute(ctx context.Context, cmd usecases.UpdateUserStatusCommand) (*dto.UserStatusDTO, error) {
	s.got = &cmd
	return &dto.UserStatusDTO{Message: "User deactivated successfully"}, nil
}

type stubAnalytics struct{ days int }

func (s *stubAnalytics) Execute(ctx context.Context, days int) (*dto.SubscriptionAnalyticsDTO, error) {
	s.days = days
	return &dto.SubscriptionAnalyticsDTO{Period: "30 days"}, nil
}

type stubSystemHealth struct{ health *dto.SystemHealthDTO }

func (s stubSystemHealth) Execute(ctx context.Context) *dto.SystemHealthDTO { return s.health }

type handlerStubs struct {
	listUsers *stubListUsers
	status    *stubUserStatus
	analytics *stubAnalytics
}

func newTestHandler(health *dto.SystemHealthDTO) (*Handler, *handlerStubs) {
	s := &handlerStubs{
		listUsers: &stubListUsers{},
		status:    &stubUserStatus{},
		analytics: &stubAnalytics{},
	}
	h := NewHandler(
		stubStatistics{stats: &dto.StatisticsDTO{}},
		s.listUsers,
		stubUserDetails{},
		s.status,
		s.analytics,
		stubSystemHealth{health: health},
		logger.Nop(),
	)
	return h, s
}

func TestHandler_ListUsers_PassesFilters(t *testing.T) {
	h, s := newTestHandler(nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/users", nil)
	testutil.SetQueryParams(c, map[string]string{
		"page": "2", "limit": "5", "search": "ali", "subscription": "premium", "status": "active",
	})
	h.ListUsers(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, s.listUsers.got)
	assert.Equal(t, 2, s.listUsers.got.Page)
	assert.Equal(t, 5, s.listUsers.got.PageSize)
	assert.Equal(t, "ali", s.listUsers.got.Search)
	assert.Equal(t, "premium", s.listUsers.got.Subscription)
	assert.Equal(t, "active", s.listUsers.got.Status)
}

func TestHandler_GetUserDetails_NotFound(t *testing.T) {
	h, _ := newTestHandler(nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/users/8", nil)
	testutil.SetURLParam(c, "id", "8")
	h.GetUserDetails(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateUserStatus(t *testing.T) {
	t.Run("requires isActive", func(t *testing.T) {
		h, s := newTestHandler(nil)
		c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/users/8/status", map[string]any{})
		testutil.SetURLParam(c, "id", "8")
		h.UpdateUserStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, s.status.got)
	})

	t.Run("false is a valid value", func(t *testing.T) {
		h, s := newTestHandler(nil)
		c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/users/8/status", map[string]any{"isActive": false})
		testutil.SetURLParam(c, "id", "8")
		h.UpdateUserStatus(c)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, s.status.got)
		assert.Equal(t, uint(8), s.status.got.AccountID)
		assert.False(t, s.status.got.IsActive)
	})
}

func TestHandler_GetSubscriptionAnalytics_Days(t *testing.T) {
	h, s := newTestHandler(nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/analytics/subscriptions", nil)
	testutil.SetQueryParams(c, map[string]string{"days": "7"})
	h.GetSubscriptionAnalytics(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7, s.analytics.days)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/admin/analytics/subscriptions", nil)
	testutil.SetQueryParams(c, map[string]string{"days": "-1"})
	h.GetSubscriptionAnalytics(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSystemHealth(t *testing.T) {
	healthy := &dto.SystemHealthDTO{Status: "healthy", Database: dto.DatabaseHealthDTO{Status: "connected"}}
	h, _ := newTestHandler(healthy)
	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/system/health", nil)
	h.GetSystemHealth(c)
	assert.Equal(t, http.StatusOK, w.Code)

	unhealthy := &dto.SystemHealthDTO{Status: "unhealthy", Database: dto.DatabaseHealthDTO{Status: "disconnected"}}
	h, _ = newTestHandler(unhealthy)
	c, w = testutil.NewTestContext(http.MethodGet, "/api/admin/system/health", nil)
	h.GetSystemHealth(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
