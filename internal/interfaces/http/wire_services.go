package http

import (
	"context"
	"fmt"
	"time"

	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/infrastructure/cache"
	"github.com/folio-hq/folio/internal/infrastructure/email"
	"github.com/folio-hq/folio/internal/infrastructure/messaging"
	"github.com/folio-hq/folio/internal/infrastructure/metrics"
	"github.com/folio-hq/folio/internal/infrastructure/permission"
	"github.com/folio-hq/folio/internal/infrastructure/ratelimit"
	"github.com/folio-hq/folio/internal/infrastructure/storage"
	sharedConfig "github.com/folio-hq/folio/internal/shared/config"
)

// initRedis connects when redis is enabled. A failed connection is logged and
// the container falls back to in-process implementations.
func (c *Container) initRedis(ctx context.Context) {
	if !c.cfg.Redis.Enabled {
		c.log.Infow("redis disabled, using in-process rate limiting and no site cache")
		return
	}

	client, err := cache.NewRedisClient(ctx, &c.cfg.Redis)
	if err != nil {
		c.log.Warnw("redis unavailable, continuing without it",
			"addr", c.cfg.Redis.GetAddr(),
			"error", err,
		)
		return
	}
	c.redis = client
	c.log.Infow("redis connected", "addr", c.cfg.Redis.GetAddr())
}

func (c *Container) initServices() error {
	c.metrics = metrics.New()

	if c.redis != nil {
		ttl := time.Duration(c.cfg.Tenancy.SiteCacheMinutes) * time.Minute
		c.siteCache = cache.NewRedisSiteCache(c.redis, ttl, c.log)
	} else {
		c.siteCache = cache.NopSiteCache{}
	}

	c.publisher = c.newPublisher()

	store, err := storage.New(&c.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	c.store = store

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	if err := enforcer.Bootstrap(c.cfg.Admin.Emails); err != nil {
		return fmt.Errorf("failed to bootstrap admin policy: %w", err)
	}
	c.enforcer = enforcer

	return nil
}

// newPublisher prefers amqp, then redis pub/sub, then a no-op publisher.
func (c *Container) newPublisher() messaging.Publisher {
	if url := c.cfg.Messaging.AMQPURL; url != "" {
		p, err := messaging.NewAMQPPublisher(url, c.cfg.Messaging.Exchange, c.log)
		if err == nil {
			return p
		}
		c.log.Warnw("amqp unavailable, falling back", "error", err)
	}
	if c.redis != nil {
		return messaging.NewRedisPublisher(c.redis, c.log)
	}
	return messaging.NopPublisher{}
}

func (c *Container) newMailer() email.Mailer {
	if !c.cfg.Email.Enabled {
		return email.NopMailer{}
	}
	return email.NewSMTPMailer(email.SMTPConfigFrom(&c.cfg.Email, c.cfg.Server.BaseURL))
}

func (c *Container) newRateLimiter() ratelimit.RateLimiter {
	window := c.cfg.RateLimit.Window()
	if c.redis != nil {
		return ratelimit.NewRedisRateLimiter(c.redis, c.cfg.RateLimit.Requests, window)
	}
	return ratelimit.NewMemoryRateLimiter(c.cfg.RateLimit.Requests, window)
}

func planTableFrom(cfg *sharedConfig.PlansConfig) *entitlement.PlanTable {
	return entitlement.NewPlanTable(
		featuresFrom(cfg.Free),
		featuresFrom(cfg.Premium),
		featuresFrom(cfg.Enterprise),
	)
}

func featuresFrom(p sharedConfig.PlanLimitsConfig) entitlement.Features {
	return entitlement.Features{
		PortfolioLimit:   p.PortfolioLimit,
		TestimonialLimit: p.TestimonialLimit,
		ServiceLimit:     p.ServiceLimit,
		AwardLimit:       p.AwardLimit,
		CustomDomain:     p.CustomDomain,
		Analytics:        p.Analytics,
		SEOOptimization:  p.SEOOptimization,
		PrioritySupport:  p.PrioritySupport,
	}
}
