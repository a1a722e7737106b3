package ratelimit

import (
	"context"
	"log/slog"

	"petnfc/config"
	"petnfc/internal/domain/constants"
	"petnfc/internal/domain/lifecycle"
	"petnfc/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// LimiterParams holds dependencies for the RateLimiter, injected by Fx
type LimiterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRateLimiter selects the throttling store from configuration
func NewRateLimiter(params LimiterParams) (service.RateLimiter, error) {
	cfg := params.Config.RateLimit

	switch cfg.Store {
	case "", constants.RateLimitStoreMemory:
		params.Logger.Info("Using in-memory rate limit store",
			slog.Duration("window", cfg.Window),
		)

		return NewMemoryLimiter(cfg.Window), nil

	case constants.RateLimitStoreRedis:
		if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis rate limit store")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     params.Config.Redis.Addr,
			Password: params.Config.Redis.Password,
			DB:       params.Config.Redis.DB,
		})

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
			},
			OnStop: func(_ context.Context) error {
				params.Logger.Info("Closing redis rate limit store")

				return errors.WithStack(client.Close())
			},
		})

		params.Logger.Info("Using redis rate limit store",
			slog.String("addr", params.Config.Redis.Addr),
			slog.Duration("window", cfg.Window),
		)

		return NewRedisLimiter(client, cfg.Window), nil

	default:
		return nil, errors.Errorf("unknown rate limit store: %s", cfg.Store)
	}
}
