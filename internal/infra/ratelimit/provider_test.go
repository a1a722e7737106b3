package ratelimit

import (
	"log/slog"
	"testing"
	"time"

	"petnfc/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newProviderParams(t *testing.T, cfg *config.Config) LimiterParams {
	return LimiterParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: cfg,
		Logger: slog.Default(),
	}
}

func TestNewRateLimiter_DefaultsToMemory(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{Window: time.Minute}}

	limiter, err := NewRateLimiter(newProviderParams(t, cfg))
	require.NoError(t, err)
	assert.IsType(t, &memoryLimiter{}, limiter)
}

func TestNewRateLimiter_RedisRequiresAddress(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{Store: "redis", Window: time.Minute}}

	_, err := NewRateLimiter(newProviderParams(t, cfg))
	assert.ErrorContains(t, err, "redis address is required")
}

func TestNewRateLimiter_Redis(t *testing.T) {
	cfg := &config.Config{
		RateLimit: &config.RateLimitConfig{Store: "redis", Window: time.Minute},
		Redis:     &config.RedisConfig{Addr: "localhost:6379"},
	}

	limiter, err := NewRateLimiter(newProviderParams(t, cfg))
	require.NoError(t, err)
	assert.IsType(t, &redisLimiter{}, limiter)
}

func TestNewRateLimiter_UnknownStore(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{Store: "memcached"}}

	_, err := NewRateLimiter(newProviderParams(t, cfg))
	assert.ErrorContains(t, err, "unknown rate limit store")
}
