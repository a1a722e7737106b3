package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestRedisLimiter_WindowLifecycle(t *testing.T) {
	mr, client := newTestRedis(t)
	limiter := NewRedisLimiter(client, 5*time.Minute)
	ctx := context.Background()

	first, err := limiter.Allow(ctx, "p1", "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, first.Allow)
	assert.True(t, mr.Exists("petnfc:ratelimit:p1|203.0.113.7"))

	mr.FastForward(time.Minute)

	second, err := limiter.Allow(ctx, "p1", "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, second.Allow)
	assert.Greater(t, second.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, second.RetryAfter, 4*time.Minute)

	mr.FastForward(4*time.Minute + time.Second)

	third, err := limiter.Allow(ctx, "p1", "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, third.Allow)
}

func TestRedisLimiter_KeysAreIndependent(t *testing.T) {
	_, client := newTestRedis(t)
	limiter := NewRedisLimiter(client, 5*time.Minute)
	ctx := context.Background()

	a, err := limiter.Allow(ctx, "p1", "203.0.113.7")
	require.NoError(t, err)
	b, err := limiter.Allow(ctx, "p1", "198.51.100.1")
	require.NoError(t, err)

	assert.True(t, a.Allow)
	assert.True(t, b.Allow)
}

func TestRedisLimiter_ServerError(t *testing.T) {
	mr, client := newTestRedis(t)
	limiter := NewRedisLimiter(client, 5*time.Minute)

	mr.SetError("ERR server unavailable")

	_, err := limiter.Allow(context.Background(), "p1", "203.0.113.7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis SETNX")
}
