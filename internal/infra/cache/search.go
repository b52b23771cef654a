package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// SearchCache keeps upstream search responses in Redis for a short TTL.
// A nil client or a Redis failure degrades to a miss; search never breaks
// because the cache is down.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSearchCache(client *redis.Client, ttl time.Duration) *SearchCache {
	return &SearchCache{client: client, ttl: ttl}
}

// Get unmarshals the cached value into out and reports whether it was found.
func (c *SearchCache) Get(ctx context.Context, key string, out any) bool {
	if c == nil || c.client == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("search cache read failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		slog.Warn("search cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (c *SearchCache) Set(ctx context.Context, key string, value any) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		slog.Warn("search cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.Warn("search cache write failed", "key", key, "error", err)
	}
}
