package wizard

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// SessionCache is the narrow cache surface the wizard needs: string payloads
// keyed by session, with the TTL refreshed on every write.
type SessionCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// redisSessionCache adapts the shared Redis session client to SessionCache.
type redisSessionCache struct {
	client *redis.Client
}

// NewRedisSessionCache wraps a Redis client for wizard session storage.
func NewRedisSessionCache(client *redis.Client) SessionCache {
	return &redisSessionCache{client: client}
}

func (c *redisSessionCache) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

func (c *redisSessionCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *redisSessionCache) Del(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
