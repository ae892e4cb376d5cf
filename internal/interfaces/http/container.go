package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/domain/resource"
	"github.com/folio-hq/folio/internal/domain/tenancy"
	"github.com/folio-hq/folio/internal/infrastructure/cache"
	"github.com/folio-hq/folio/internal/infrastructure/config"
	"github.com/folio-hq/folio/internal/infrastructure/messaging"
	"github.com/folio-hq/folio/internal/infrastructure/metrics"
	"github.com/folio-hq/folio/internal/infrastructure/permission"
	"github.com/folio-hq/folio/internal/infrastructure/storage"
	"github.com/folio-hq/folio/internal/interfaces/http/middleware"
	"github.com/folio-hq/folio/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases,
// handlers and middlewares, wired together once at startup. Configuration is
// read here and passed down explicitly; nothing below reads it globally.
type Container struct {
	// Core infrastructure
	engine    *gin.Engine
	db        *gorm.DB
	cfg       *config.Config
	log       logger.Interface
	redis     *redis.Client
	env       string
	startedAt time.Time

	// Immutable tables built from config
	plans    *entitlement.PlanTable
	reserved tenancy.ReservedSet
	registry *resource.Registry

	// Repositories
	repos *repositories

	// Infrastructure services
	siteCache cache.SiteCache
	publisher messaging.Publisher
	enforcer  *permission.Enforcer
	store     storage.Storage
	metrics   *metrics.Metrics

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	tenantMiddleware     *middleware.TenantMiddleware
	quotaMiddleware      *middleware.QuotaMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter
}

// NewContainer wires every component. Optional backends (redis, amqp, smtp)
// degrade to in-process or no-op implementations when not configured.
func NewContainer(ctx context.Context, env string, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine:    gin.New(),
		env:       env,
		db:        db,
		cfg:       cfg,
		log:       log,
		startedAt: time.Now(),
	}

	// Section 1: Infrastructure - tables, redis, repositories
	c.plans = planTableFrom(&cfg.Plans)
	c.reserved = tenancy.NewReservedSet(cfg.Tenancy.ReservedSubdomains)
	c.initRedis(ctx)
	c.repos = newRepositories(db, log)

	registry, err := c.repos.resources.Registry()
	if err != nil {
		return nil, err
	}
	c.registry = registry

	// Section 2: Services - cache, messaging, storage, permissions, metrics
	if err := c.initServices(); err != nil {
		return nil, err
	}

	// Section 3: Use cases
	ucs, err := c.newUseCases()
	if err != nil {
		return nil, err
	}
	c.ucs = ucs

	// Section 4: Middlewares
	c.authMiddleware = middleware.NewAuthMiddleware(c.ucs.authenticate, log)
	c.tenantMiddleware = middleware.NewTenantMiddleware(c.ucs.resolveTenant, log)
	c.quotaMiddleware = middleware.NewQuotaMiddleware(c.ucs.checkQuota, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, log)
	c.rateLimiter = middleware.NewRateLimiter(c.newRateLimiter(), log)

	// Section 5: Handlers
	c.hdlrs = c.newHandlers()

	return c, nil
}

// Shutdown releases connections opened by the container.
func (c *Container) Shutdown() {
	if c.publisher != nil {
		if err := c.publisher.Close(); err != nil {
			c.log.Warnw("failed to close event publisher", "error", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
