package cache

import (
	"context"
	"log/slog"
	"time"

	"curtaincall/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// Connect opens the Redis connection used by the search cache. An empty
// address disables caching: the returned client is nil and SearchCache treats
// every lookup as a miss.
func Connect(cfg config.RedisConfig) (*redis.Client, func()) {
	if cfg.Addr == "" {
		return nil, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, search cache disabled", "addr", cfg.Addr, "error", err)
		_ = client.Close()
		return nil, func() {}
	}

	return client, func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}
}
