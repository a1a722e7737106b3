package service

import (
	"context"
	"time"
)

// RateLimitResult is the outcome of a throttling check.
type RateLimitResult struct {
	Allow bool
	// RetryAfter is how long the caller must wait before the key is accepted again.
	// Zero when Allow is true.
	RetryAfter time.Duration
}

// RateLimiter throttles owner alerts per (pet, client IP).
type RateLimiter interface {
	// Allow records the request and accepts it, unless an accepted request for
	// the same pet and IP is still inside the window. A rejected check leaves
	// the stored timestamp untouched.
	Allow(ctx context.Context, petID, clientIP string) (*RateLimitResult, error)
}

// RateLimitKey builds the store key for a pet and client IP.
func RateLimitKey(petID, clientIP string) string {
	return petID + "|" + clientIP
}
