package loader

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/logger"
)

// DefaultCacheKey is where the decoded catalog is cached
const DefaultCacheKey = "catalog:products"

// RedisCache serves the catalog from redis and falls through to the wrapped
// source on a miss. Cache failures degrade to a direct fetch.
type RedisCache struct {
	next   Source
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisCache wraps next with a redis read-through cache
func NewRedisCache(next Source, client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		next:   next,
		client: client,
		key:    DefaultCacheKey,
		ttl:    ttl,
	}
}

// Fetch returns the cached catalog or loads and caches a fresh one
func (c *RedisCache) Fetch(ctx context.Context) ([]domain.Product, error) {
	cached, err := c.client.Get(ctx, c.key).Bytes()
	switch {
	case err == nil:
		var products []domain.Product
		if jsonErr := json.Unmarshal(cached, &products); jsonErr == nil {
			logger.Debug(ctx).Str("cache_key", c.key).Msg("Catalog cache hit")
			return products, nil
		}
		logger.Warn(ctx).Str("cache_key", c.key).Msg("Discarding unreadable cached catalog")
	case errors.Is(err, redis.Nil):
		logger.Debug(ctx).Str("cache_key", c.key).Msg("Catalog cache miss")
	default:
		logger.Warn(ctx).Err(err).Str("cache_key", c.key).Msg("Catalog cache unavailable")
	}

	products, err := c.next.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(products)
	if err == nil {
		err = c.client.Set(ctx, c.key, payload, c.ttl).Err()
	}
	if err != nil {
		logger.Warn(ctx).Err(err).Str("cache_key", c.key).Msg("Failed to cache catalog")
	}
	return products, nil
}

// Invalidate drops the cached catalog so the next Fetch goes to the source
func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
