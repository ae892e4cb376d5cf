package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	subscriptiondto "github.com/folio-hq/folio/internal/application/subscription/dto"
	"github.com/folio-hq/folio/internal/infrastructure/config"
	"github.com/folio-hq/folio/internal/infrastructure/database"
	"github.com/folio-hq/folio/internal/infrastructure/migration"
	sharedConfig "github.com/folio-hq/folio/internal/shared/config"
	"github.com/folio-hq/folio/internal/shared/logger"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: sharedConfig.ServerConfig{
			Mode:           gin.TestMode,
			BaseURL:        "http://folio.test",
			RootDomain:     "folio.test",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: sharedConfig.DatabaseConfig{Driver: "sqlite", Database: ":memory:"},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: 4},
			JWT:      sharedConfig.JWTConfig{Secret: "router-test-secret", ExpHours: 1},
		},
		RateLimit: sharedConfig.RateLimitConfig{Requests: 100, WindowMinutes: 15},
		Tenancy: sharedConfig.TenancyConfig{
			ReservedSubdomains: []string{"www", "api", "admin"},
			SiteCacheMinutes:   10,
		},
		Plans: sharedConfig.PlansConfig{
			Free: sharedConfig.PlanLimitsConfig{PortfolioLimit: 3, TestimonialLimit: 5, ServiceLimit: 3, AwardLimit: 3},
			Premium: sharedConfig.PlanLimitsConfig{
				PortfolioLimit: 20, TestimonialLimit: 20, ServiceLimit: 10, AwardLimit: 10,
				CustomDomain: true, Analytics: true, SEOOptimization: true,
			},
			Enterprise: sharedConfig.PlanLimitsConfig{
				PortfolioLimit: -1, TestimonialLimit: -1, ServiceLimit: -1, AwardLimit: -1,
				CustomDomain: true, Analytics: true, SEOOptimization: true, PrioritySupport: true,
			},
		},
		Admin:     sharedConfig.AdminConfig{Emails: []string{"root@example.com"}},
		Storage:   sharedConfig.StorageConfig{Type: "local", BasePath: t.TempDir(), BaseURL: "http://folio.test/uploads", MaxSizeMB: 5},
		Metrics:   sharedConfig.MetricsConfig{Enabled: true, Path: "/metrics"},
		Email:     sharedConfig.EmailConfig{Enabled: false},
		Messaging: sharedConfig.MessagingConfig{Exchange: "folio.events"},
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig(t)
	db, err := database.Open(&cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	migrateTestDB(t, db)

	router, err := NewRouter(t.Context(), "test", db, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(router.Shutdown)
	router.SetupRoutes()
	return router.GetEngine()
}

func migrateTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	manager, err := migration.NewManager("sqlite", "test", logger.Nop())
	require.NoError(t, err)
	require.NoError(t, manager.Migrate(db))
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, engine *gin.Engine, method, host, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Host = host
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func register(t *testing.T, engine *gin.Engine, username, email string) string {
	t.Helper()
	w, env := do(t, engine, http.MethodPost, "api.folio.test", "/api/auth/register", "", map[string]string{
		"username":  username,
		"email":     email,
		"password":  "secret123",
		"fullName":  strings.ToUpper(username[:1]) + username[1:],
		"subdomain": username,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var auth struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	require.NotEmpty(t, auth.Token)
	return auth.Token
}

func portfolioItem(n int) map[string]any {
	return map[string]any{
		"category":    "web",
		"title":       fmt.Sprintf("Project %d", n),
		"image":       "https://cdn.example.com/p.png",
		"largeImage":  "https://cdn.example.com/p-large.png",
		"description": "A project",
		"client":      "Acme",
		"duration":    "3 months",
		"task":        "Design",
		"budget":      "$1000",
	}
}

func TestRouter_Operational(t *testing.T) {
	engine := newTestRouter(t)

	w, _ := do(t, engine, http.MethodGet, "folio.test", "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w, env := do(t, engine, http.MethodGet, "folio.test", "/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Route not found", env.Message)

	w, _ = do(t, engine, http.MethodGet, "folio.test", "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Portfolio Platform API")

	w, _ = do(t, engine, http.MethodGet, "folio.test", "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestRouter_QuotaAndTenantSite(t *testing.T) {
	engine := newTestRouter(t)
	token := register(t, engine, "alice", "alice@example.com")

	w, _ := do(t, engine, http.MethodGet, "api.folio.test", "/api/portfolio", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	for i := 1; i <= 3; i++ {
		w, _ = do(t, engine, http.MethodPost, "api.folio.test", "/api/portfolio", token, portfolioItem(i))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w, env := do(t, engine, http.MethodPost, "api.folio.test", "/api/portfolio", token, portfolioItem(4))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, env.Success)

	// Skills are not plan limited.
	for i := 0; i < 5; i++ {
		w, _ = do(t, engine, http.MethodPost, "api.folio.test", "/api/skills", token, map[string]any{
			"name":       fmt.Sprintf("skill-%d", i),
			"percentage": 50,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w, env = do(t, engine, http.MethodGet, "api.folio.test", "/api/subscriptions/limits/portfolio", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var limits map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &limits))
	assert.EqualValues(t, 3, limits["currentCount"])
	assert.EqualValues(t, 0, limits["remaining"])

	w, env = do(t, engine, http.MethodGet, "alice.folio.test", "/site", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, string(env.Data), `"subdomain":"alice"`)

	w, _ = do(t, engine, http.MethodGet, "alice.folio.test", "/site/portfolio", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, engine, http.MethodGet, "nobody.folio.test", "/site", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "SUBDOMAIN_NOT_FOUND")

	w, _ = do(t, engine, http.MethodGet, "folio.test", "/site", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_AdminRequiresRole(t *testing.T) {
	engine := newTestRouter(t)
	userToken := register(t, engine, "bob", "bob@example.com")
	adminToken := register(t, engine, "root", "root@example.com")

	w, _ := do(t, engine, http.MethodGet, "api.folio.test", "/api/admin/statistics", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = do(t, engine, http.MethodGet, "api.folio.test", "/api/admin/statistics", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, _ = do(t, engine, http.MethodGet, "api.folio.test", "/api/admin/users?search=bob", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bob@example.com")
}

func decodeSubscription(t *testing.T, env envelope) *subscriptiondto.SubscriptionDTO {
	t.Helper()
	var sub subscriptiondto.SubscriptionDTO
	require.NoError(t, json.Unmarshal(env.Data, &sub))
	return &sub
}

func decodeTransition(t *testing.T, env envelope) *subscriptiondto.SubscriptionDTO {
	t.Helper()
	var transition subscriptiondto.TransitionDTO
	require.NoError(t, json.Unmarshal(env.Data, &transition))
	require.NotNil(t, transition.Subscription)
	return transition.Subscription
}

func TestRouter_SubscriptionLifecycle(t *testing.T) {
	engine := newTestRouter(t)
	token := register(t, engine, "carol", "carol@example.com")
	const host = "api.folio.test"

	w, env := do(t, engine, http.MethodGet, host, "/api/subscriptions/current", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	opening := decodeSubscription(t, env)
	assert.Equal(t, "free", opening.PlanID)
	assert.Equal(t, "active", opening.Status)

	w, env = do(t, engine, http.MethodPost, host, "/api/subscriptions/upgrade", token, map[string]string{
		"planId":        "premium",
		"paymentMethod": "stripe",
		"paymentId":     "pi_1",
		"billingCycle":  "monthly",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	premium := decodeTransition(t, env)
	assert.Equal(t, "premium", premium.PlanID)
	assert.True(t, premium.Features.CustomDomain)
	assert.True(t, premium.Features.Analytics)
	assert.True(t, premium.Features.SEOOptimization)

	w, env = do(t, engine, http.MethodGet, host, "/api/subscriptions/current", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, premium.ID, decodeSubscription(t, env).ID)

	w, env = do(t, engine, http.MethodPost, host, "/api/subscriptions/cancel", token, map[string]string{"reason": "on a break"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cancelled := decodeTransition(t, env)
	assert.Equal(t, premium.ID, cancelled.ID)
	assert.Equal(t, "cancelled", cancelled.Status)

	w, env = do(t, engine, http.MethodGet, host, "/api/subscriptions/current", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	successor := decodeSubscription(t, env)
	assert.NotEqual(t, opening.ID, successor.ID)
	assert.NotEqual(t, premium.ID, successor.ID)
	assert.Equal(t, "free", successor.PlanID)
	assert.Equal(t, "active", successor.Status)
	assert.True(t, successor.StartDate.Equal(cancelled.EndDate))

	w, env = do(t, engine, http.MethodPost, host, "/api/subscriptions/reactivate", token, map[string]string{})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	revived := decodeTransition(t, env)
	assert.Equal(t, premium.ID, revived.ID)
	assert.Equal(t, "premium", revived.PlanID)
	assert.Equal(t, "active", revived.Status)

	w, env = do(t, engine, http.MethodGet, host, "/api/subscriptions/current", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	current := decodeSubscription(t, env)
	assert.Equal(t, premium.ID, current.ID)
	assert.Equal(t, "active", current.Status)

	w, _ = do(t, engine, http.MethodPost, host, "/api/subscriptions/reactivate", token, map[string]string{})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = do(t, engine, http.MethodGet, host, "/api/subscriptions/limits/portfolio", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var limits map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &limits))
	assert.EqualValues(t, 20, limits["limit"])
}

func TestRouter_LimitsBeforeFirstSubscriptionRead(t *testing.T) {
	engine := newTestRouter(t)
	token := register(t, engine, "dave", "dave@example.com")

	w, env := do(t, engine, http.MethodGet, "api.folio.test", "/api/subscriptions/limits/portfolio", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var limits map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &limits))
	assert.Equal(t, true, limits["hasLimit"])
	assert.EqualValues(t, 3, limits["limit"])
	assert.EqualValues(t, 0, limits["currentCount"])
	assert.EqualValues(t, 3, limits["remaining"])

	// the row opened by the limits query is the one current reports
	w, env = do(t, engine, http.MethodGet, "api.folio.test", "/api/subscriptions/current", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "free", decodeSubscription(t, env).PlanID)

	w, env = do(t, engine, http.MethodGet, "api.folio.test", "/api/subscriptions/history", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history []subscriptiondto.SubscriptionDTO
	require.NoError(t, json.Unmarshal(env.Data, &history))
	assert.Len(t, history, 1)
}
