// internal/store/redis.go
//
// Redis read-through cache for any Store.
//
// Context
// -------
// Production fronts the slower backing store (disk or S3) with a short-TTL
// Redis cache.  Semantics stay load-per-request friendly: the TTL is the
// only staleness window, a cache miss falls through to the inner store,
// and Redis being down degrades to the inner store instead of failing the
// request.  ErrNotFound is never cached, so publishing a new tenant is
// visible immediately.

package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisCache decorates a Store with read-through caching.
type RedisCache struct {
	client *redis.Client
	inner  Store
	ttl    time.Duration
}

// NewRedisCache wraps inner with a cache on client.  A zero ttl disables
// expiry, which is almost never what production wants.
func NewRedisCache(client *redis.Client, inner Store, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, inner: inner, ttl: ttl}
}

func cacheKey(slug string) string { return "restau:config:" + slug }

// Fetch returns the cached bytes, or reads through to the inner store and
// populates the cache on the way back.
func (c *RedisCache) Fetch(ctx context.Context, slug string) ([]byte, error) {
	b, err := c.client.Get(ctx, cacheKey(slug)).Bytes()
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, redis.Nil) {
		// Redis unreachable: degrade to the inner store, keep serving.
		zap.S().Warnw("config cache read failed", "slug", slug, "err", err)
	}

	b, err = c.inner.Fetch(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := c.client.Set(ctx, cacheKey(slug), b, c.ttl).Err(); err != nil {
		zap.S().Warnw("config cache write failed", "slug", slug, "err", err)
	}
	return b, nil
}
