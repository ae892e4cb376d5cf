package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entitlementusecases "github.com/folio-hq/folio/internal/application/entitlement/usecases"
	tenancyusecases "github.com/folio-hq/folio/internal/application/tenancy/usecases"
	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/domain/resource"
	"github.com/folio-hq/folio/internal/domain/tenancy"
	"github.com/folio-hq/folio/internal/infrastructure/ratelimit"
	"github.com/folio-hq/folio/internal/shared/constants"
	"github.com/folio-hq/folio/internal/shared/logger"
	"github.com/folio-hq/folio/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, host, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Host = host
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func withPrincipal(p *tenancyusecases.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, p.AccountID)
		c.Set(constants.ContextKeyPrincipal, p)
		c.Next()
	}
}

func ok(c *gin.Context) { c.Status(http.StatusOK) }

func TestRequestID(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := serve(engine, http.MethodGet, "example.com", "/", map[string]string{constants.HeaderXRequestID: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(constants.HeaderXRequestID))
	assert.Equal(t, "abc-123", w.Body.String())

	w = serve(engine, http.MethodGet, "example.com", "/", nil)
	generated := w.Header().Get(constants.HeaderXRequestID)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())
}

func TestRateLimiter_Limit(t *testing.T) {
	engine := gin.New()
	engine.Use(NewRateLimiter(ratelimit.NewMemoryRateLimiter(2, time.Minute), logger.Nop()).Limit())
	engine.GET("/api/x", ok)

	for range 2 {
		w := serve(engine, http.MethodGet, "example.com", "/api/x", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := serve(engine, http.MethodGet, "example.com", "/api/x", nil)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "Too many requests from this IP, please try again later.", decode(t, w).Message)
}

type failingLimiter struct{}

func (failingLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return false, errors.New("redis down")
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	engine := gin.New()
	engine.Use(NewRateLimiter(failingLimiter{}, logger.Nop()).Limit())
	engine.GET("/", ok)

	w := serve(engine, http.MethodGet, "example.com", "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS([]string{"https://app.example.com"}), SecurityHeaders())
	engine.GET("/", ok)
	engine.OPTIONS("/", ok)

	w := serve(engine, http.MethodOptions, "example.com", "/", map[string]string{"Origin": "https://app.example.com"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(engine, http.MethodGet, "example.com", "/", map[string]string{"Origin": "https://evil.example.net"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestRecovery(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery(logger.Nop()))
	engine.GET("/", func(c *gin.Context) { panic("boom") })

	w := serve(engine, http.MethodGet, "example.com", "/", map[string]string{constants.HeaderAuthorization: "Bearer secret"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, constants.ErrMsgInternalServerError, resp.Message)
}

type recordedRequest struct {
	route  string
	status int
	class  string
}

type recordingObserver struct {
	requests []recordedRequest
}

func (r *recordingObserver) ObserveRequest(method, route string, status int, class string, elapsed time.Duration) {
	r.requests = append(r.requests, recordedRequest{route: route, status: status, class: class})
}

func TestMetrics_UsesRouteTemplateAndClass(t *testing.T) {
	observer := &recordingObserver{}
	tm := NewTenantMiddleware(nil, logger.Nop())

	engine := gin.New()
	engine.Use(tm.Classify(), Metrics(observer))
	engine.GET("/api/portfolio/:id", ok)

	serve(engine, http.MethodGet, "api.example.com", "/api/portfolio/42", nil)

	require.Len(t, observer.requests, 1)
	assert.Equal(t, recordedRequest{route: "/api/portfolio/:id", status: http.StatusOK, class: "api"}, observer.requests[0])
}

// accountRepoStub embeds the interface so only the used lookup is implemented.
type accountRepoStub struct {
	account.Repository
	bySubdomain map[string]*account.Account
}

func (s *accountRepoStub) GetActiveBySubdomain(ctx context.Context, subdomain string) (*account.Account, error) {
	return s.bySubdomain[subdomain], nil
}

func TestTenantMiddleware_ResolveTenant(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	alice, err := account.ReconstructAccount(account.ReconstructParams{
		ID: 1, Username: "alice", Email: "alice@example.com", Subdomain: "alice",
		FullName: "Alice", IsActive: true, Tier: entitlement.PlanFree, TierExpiresAt: &future,
	})
	require.NoError(t, err)

	repo := &accountRepoStub{bySubdomain: map[string]*account.Account{"alice": alice}}
	tm := NewTenantMiddleware(tenancyusecases.NewResolveTenantUseCase(repo, nil, logger.Nop()), logger.Nop())

	engine := gin.New()
	engine.Use(tm.Classify(), tm.ResolveTenant())
	engine.GET("/site", RequireTenant(), func(c *gin.Context) {
		tenant, _ := GetTenant(c)
		c.String(http.StatusOK, tenant.Subdomain())
	})
	engine.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, string(GetRequestClass(c).Kind))
	})

	t.Run("known tenant", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "Alice.example.com:8080", "/site", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice", w.Body.String())
	})

	t.Run("unknown tenant", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "bob.example.com", "/site", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		resp := decode(t, w)
		assert.Equal(t, "Portfolio not found", resp.Message)
		assert.Equal(t, "SUBDOMAIN_NOT_FOUND", resp.Error.Type)
	})

	t.Run("main host passes through", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "example.com", "/health", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, string(tenancy.ClassMain), w.Body.String())
	})

	t.Run("site requires a tenant host", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "example.com", "/site", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

type fixedCounter int64

func (f fixedCounter) Count(ctx context.Context, ownerID uint) (int64, error) {
	return int64(f), nil
}

func TestQuotaMiddleware_CheckLimit(t *testing.T) {
	registry, err := resource.NewRegistry(map[resource.Kind]resource.Counter{
		resource.KindPortfolio: fixedCounter(3),
		resource.KindSkill:     fixedCounter(100),
	})
	require.NoError(t, err)
	qm := NewQuotaMiddleware(entitlementusecases.NewCheckQuotaUseCase(registry, entitlement.DefaultPlanTable(), nil, logger.Nop()), logger.Nop())

	newEngine := func(tier entitlement.PlanID, kind resource.Kind) *gin.Engine {
		engine := gin.New()
		engine.POST("/", withPrincipal(&tenancyusecases.Principal{AccountID: 1, Tier: tier}), qm.CheckLimit(kind), ok)
		return engine
	}

	w := serve(newEngine(entitlement.PlanFree, resource.KindPortfolio), http.MethodPost, "example.com", "/", nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	resp := decode(t, w)
	assert.EqualValues(t, 3, resp.Error.Meta["limit"])
	assert.EqualValues(t, 3, resp.Error.Meta["current"])

	w = serve(newEngine(entitlement.PlanEnterprise, resource.KindPortfolio), http.MethodPost, "example.com", "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(newEngine(entitlement.PlanFree, resource.KindSkill), http.MethodPost, "example.com", "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	engine := gin.New()
	engine.POST("/", qm.CheckLimit(resource.KindPortfolio), ok)
	w = serve(engine, http.MethodPost, "example.com", "/", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

type checkerFunc func(subject, object, action string) (bool, error)

func (f checkerFunc) Enforce(subject, object, action string) (bool, error) {
	return f(subject, object, action)
}

func TestPermissionMiddleware_RequirePermission(t *testing.T) {
	checker := checkerFunc(func(subject, object, action string) (bool, error) {
		switch subject {
		case "admin@example.com":
			return true, nil
		case "broken@example.com":
			return false, errors.New("policy store unavailable")
		default:
			return false, nil
		}
	})
	pm := NewPermissionMiddleware(checker, logger.Nop())

	tests := []struct {
		email string
		want  int
	}{
		{"Admin@Example.com", http.StatusOK},
		{"user@example.com", http.StatusForbidden},
		{"broken@example.com", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			engine := gin.New()
			engine.GET("/api/admin/statistics",
				withPrincipal(&tenancyusecases.Principal{AccountID: 1, Email: tt.email}),
				pm.RequirePermission("admin/statistics", "read"),
				ok,
			)
			w := serve(engine, http.MethodGet, "example.com", "/api/admin/statistics", nil)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
