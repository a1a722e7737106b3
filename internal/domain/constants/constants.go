// Package constants holds values shared across layers.
package constants

// Rate limit store backends
const (
	RateLimitStoreMemory = "memory"
	RateLimitStoreRedis  = "redis"
)

// Geolocation providers
const (
	GeoProviderHTTP    = "http"
	GeoProviderMaxMind = "maxmind"
)

// UnknownClientIP is used when no client IP header is present.
const UnknownClientIP = "unknown"

// Client IP headers, in lookup order
const (
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderXRealIP       = "X-Real-Ip"
)

// HeaderRetryAfter carries the remaining throttle wait in seconds
const HeaderRetryAfter = "Retry-After"

// HeaderCacheControl is set on rendered tag codes
const HeaderCacheControl = "Cache-Control"

// Alert event providers
const (
	EventProviderLocal  = "local"
	EventProviderGoogle = "google"
)
