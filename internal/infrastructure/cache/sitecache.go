package cache

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/folio-hq/folio/internal/shared/logger"
)

// SiteCache stores the rendered public site payload of an account.
type SiteCache interface {
	// Get returns the cached payload, or nil on a miss.
	Get(ctx context.Context, accountID uint) ([]byte, error)
	Set(ctx context.Context, accountID uint, payload []byte) error
	Invalidate(ctx context.Context, accountID uint) error
}

const siteKeyPrefix = "site:payload:"

// RedisSiteCache keeps payloads as plain strings with a jittered TTL so
// entries written together do not all expire together.
type RedisSiteCache struct {
	client *redis.Client
	ttl    time.Duration
	jitter time.Duration
	logger logger.Interface
}

func NewRedisSiteCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisSiteCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisSiteCache{
		client: client,
		ttl:    ttl,
		jitter: ttl / 5,
		logger: logger,
	}
}

func (c *RedisSiteCache) key(accountID uint) string {
	return fmt.Sprintf("%s%d", siteKeyPrefix, accountID)
}

func (c *RedisSiteCache) Get(ctx context.Context, accountID uint) ([]byte, error) {
	data, err := c.client.Get(ctx, c.key(accountID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get site payload from cache: %w", err)
	}
	return data, nil
}

func (c *RedisSiteCache) Set(ctx context.Context, accountID uint, payload []byte) error {
	ttl := c.ttl
	if c.jitter > 0 {
		ttl += time.Duration(rand.Int64N(int64(c.jitter)))
	}
	if err := c.client.Set(ctx, c.key(accountID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set site payload in cache: %w", err)
	}
	return nil
}

func (c *RedisSiteCache) Invalidate(ctx context.Context, accountID uint) error {
	if err := c.client.Del(ctx, c.key(accountID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate site payload: %w", err)
	}
	c.logger.Debugw("site payload invalidated", "account_id", accountID)
	return nil
}

// NopSiteCache is used when redis is disabled. Every lookup misses.
type NopSiteCache struct{}

func (NopSiteCache) Get(context.Context, uint) ([]byte, error) { return nil, nil }
func (NopSiteCache) Set(context.Context, uint, []byte) error   { return nil }
func (NopSiteCache) Invalidate(context.Context, uint) error    { return nil }
