package bootstrap

import (
	"context"

	"curtaincall/internal/infra/cache"
	"curtaincall/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		NewSearchCache,
	),
)

// NewRedis may provide a nil client; the search cache degrades to a
// pass-through in that case.
func NewRedis(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client, cleanup := cache.Connect(cfg.Redis)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return client
}

func NewSearchCache(client *redis.Client, cfg config.Config) *cache.SearchCache {
	return cache.NewSearchCache(client, cfg.Redis.TTL)
}
