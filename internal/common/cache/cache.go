// internal/common/cache/cache.go
package cache

import (
	"context"
	"encoding/json"
	"time"

	"edupath-server/internal/common/database"
	"edupath-server/internal/common/logger"

	"github.com/redis/go-redis/v9"
)

// Cache is a JSON read-through layer over Redis. A Cache built over a nil
// client is disabled: every Get misses and every Set is a no-op, so handlers
// never branch on whether Redis is configured.
type Cache struct {
	redis  *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

func New(redisClient *database.RedisClient, ttl time.Duration, log logger.Logger) *Cache {
	return &Cache{
		redis:  redisClient,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "cache"}),
	}
}

// GetJSON loads key into out. Returns false on miss, disabled cache, or any
// Redis error; errors other than a plain miss are logged.
func (c *Cache) GetJSON(ctx context.Context, key string, out interface{}) bool {
	if c == nil || c.redis == nil {
		return false
	}

	raw, err := c.redis.Get(ctx, key)
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache read failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return false
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		c.logger.Warn("cache entry is not valid JSON, evicting", map[string]interface{}{
			"key": key,
		})
		_ = c.redis.Del(ctx, key)
		return false
	}
	return true
}

// SetJSON stores v under key with the configured TTL. Failures are logged
// only; the caller has already produced the response.
func (c *Cache) SetJSON(ctx context.Context, key string, v interface{}) {
	if c == nil || c.redis == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("cache value not serializable", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return
	}
	if err := c.redis.Set(ctx, key, string(raw), c.ttl); err != nil {
		c.logger.Warn("cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// Invalidate drops the given keys. Used after admin writes.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.redis == nil || len(keys) == 0 {
		return
	}
	if err := c.redis.Del(ctx, keys...); err != nil {
		c.logger.Warn("cache invalidation failed", map[string]interface{}{
			"keys":  keys,
			"error": err.Error(),
		})
	}
}
