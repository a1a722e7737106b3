// Package ratelimit provides the stores behind owner alert throttling.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"petnfc/internal/domain/constants"
	"petnfc/internal/domain/service"
	"petnfc/internal/infra/metrics"

	gocache "github.com/patrickmn/go-cache"
)

// memoryLimiter keeps the last accepted request time per key in process memory.
// Entries expire one window after they were accepted, so the map only holds
// keys that are still being throttled.
type memoryLimiter struct {
	mu     sync.Mutex
	cache  *gocache.Cache
	window time.Duration
	now    func() time.Time
}

// MemoryOption customizes a memory limiter.
type MemoryOption func(*memoryLimiter)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(l *memoryLimiter) {
		l.now = now
	}
}

// NewMemoryLimiter creates an in-process limiter with a fixed window.
func NewMemoryLimiter(window time.Duration, opts ...MemoryOption) service.RateLimiter {
	l := &memoryLimiter{
		cache:  gocache.New(window, cleanupInterval(window)),
		window: window,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

func (l *memoryLimiter) Allow(_ context.Context, petID, clientIP string) (*service.RateLimitResult, error) {
	key := service.RateLimitKey(petID, clientIP)
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if v, ok := l.cache.Get(key); ok {
		last, _ := v.(time.Time)
		if elapsed := now.Sub(last); elapsed < l.window {
			metrics.RateLimitChecks.WithLabelValues(constants.RateLimitStoreMemory, metrics.Decision(false)).Inc()

			return &service.RateLimitResult{Allow: false, RetryAfter: l.window - elapsed}, nil
		}
	}

	l.cache.Set(key, now, l.window)
	metrics.RateLimitChecks.WithLabelValues(constants.RateLimitStoreMemory, metrics.Decision(true)).Inc()

	return &service.RateLimitResult{Allow: true}, nil
}

// cleanupInterval runs the janitor twice per window, but no more than once a second.
func cleanupInterval(window time.Duration) time.Duration {
	return max(window/2, time.Second)
}
