package bootstrap

import (
	"context"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/notify"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/config"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		notify.NewNotifier,
		func(n *notify.Notifier) commands.Notifier { return n },
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
