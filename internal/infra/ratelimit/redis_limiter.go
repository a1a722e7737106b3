package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"petnfc/internal/domain/constants"
	"petnfc/internal/domain/service"
	"petnfc/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "petnfc:ratelimit:"

// redisLimiter shares throttling state between instances. SET NX PX makes the
// check-and-store a single atomic step on the server.
type redisLimiter struct {
	cmd    redis.Cmdable
	window time.Duration
}

// NewRedisLimiter creates a limiter backed by redis.
func NewRedisLimiter(cmd redis.Cmdable, window time.Duration) service.RateLimiter {
	return &redisLimiter{
		cmd:    cmd,
		window: window,
	}
}

func (l *redisLimiter) Allow(ctx context.Context, petID, clientIP string) (*service.RateLimitResult, error) {
	key := l.key(petID, clientIP)

	// One retry covers the key expiring between SETNX and PTTL.
	for range 2 {
		stored, err := l.cmd.SetNX(ctx, key, strconv.FormatInt(time.Now().UnixMilli(), 10), l.window).Result()
		if err != nil {
			return nil, errors.Wrap(err, "redis SETNX")
		}
		if stored {
			metrics.RateLimitChecks.WithLabelValues(constants.RateLimitStoreRedis, metrics.Decision(true)).Inc()

			return &service.RateLimitResult{Allow: true}, nil
		}

		ttl, err := l.cmd.PTTL(ctx, key).Result()
		if err != nil {
			return nil, errors.Wrap(err, "redis PTTL")
		}
		if ttl > 0 {
			metrics.RateLimitChecks.WithLabelValues(constants.RateLimitStoreRedis, metrics.Decision(false)).Inc()

			return &service.RateLimitResult{Allow: false, RetryAfter: ttl}, nil
		}
	}

	return nil, errors.Errorf("rate limit key %s neither stored nor expiring", key)
}

func (l *redisLimiter) key(petID, clientIP string) string {
	return fmt.Sprintf("%s%s", redisKeyPrefix, service.RateLimitKey(petID, clientIP))
}
