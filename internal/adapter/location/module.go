package location

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/inkroute/inkroute/internal/config"
	"github.com/inkroute/inkroute/internal/usecase"
)

// Module wires the Redis-backed rider location cache into the fx graph.
var Module = fx.Options(
	fx.Provide(newRedisClient),
	fx.Provide(newCache),
	fx.Provide(func(c *Cache) usecase.LocationCache { return c }),
)

type clientParams struct {
	fx.In

	Config    *config.Config
	Lifecycle fx.Lifecycle
}

func newRedisClient(p clientParams) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: p.Config.RedisAddress})
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return client
}

func newCache(client *redis.Client, cfg *config.Config) *Cache {
	return NewCache(client, cfg.RiderLocationTTL)
}
