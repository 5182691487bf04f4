package cache

import (
	"context"
	"fmt"
	"time"

	"lv33global/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// ListCache keeps serialized list responses under per-kind generations.
// Invalidate bumps the generation, so payloads written for an older
// generation are never read again and expire on their own TTL.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

func NewListCache(client *redis.Client, ttl time.Duration, log *logger.Logger) *ListCache {
	return &ListCache{
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

func generationKey(kind string) string {
	return fmt.Sprintf("list:%s:gen", kind)
}

func listKey(kind string, generation int64, variant string) string {
	return fmt.Sprintf("list:%s:%d:%s", kind, generation, variant)
}

// Generation returns the current generation of kind. ok is false when Redis
// cannot be reached; callers then bypass the cache.
func (c *ListCache) Generation(ctx context.Context, kind string) (int64, bool) {
	generation, err := c.client.Get(ctx, generationKey(kind)).Int64()
	if err == redis.Nil {
		return 0, true
	}
	if err != nil {
		c.logger.Warn("[LIST CACHE] Failed to read generation of %s: %v", kind, err)
		return 0, false
	}
	return generation, true
}

// Get returns the payload cached for (kind, generation, variant). Any Redis
// failure is reported as a miss.
func (c *ListCache) Get(ctx context.Context, kind string, generation int64, variant string) ([]byte, bool) {
	data, err := c.client.Get(ctx, listKey(kind, generation, variant)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("[LIST CACHE] Failed to read %s/%s: %v", kind, variant, err)
		}
		return nil, false
	}
	return data, true
}

func (c *ListCache) Set(ctx context.Context, kind string, generation int64, variant string, payload []byte) {
	if err := c.client.Set(ctx, listKey(kind, generation, variant), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("[LIST CACHE] Failed to store %s/%s: %v", kind, variant, err)
	}
}

func (c *ListCache) Invalidate(ctx context.Context, kind string) {
	if err := c.client.Incr(ctx, generationKey(kind)).Err(); err != nil {
		c.logger.Error("[LIST CACHE] Failed to invalidate %s: %v", kind, err)
	}
}
