// Package geo resolves client IPs to an approximate location.
package geo

import (
	"context"
	"log/slog"
	"net"
	"time"

	"petnfc/internal/domain/constants"
	"petnfc/internal/domain/entity"
	"petnfc/internal/domain/service"
	"petnfc/internal/infra/metrics"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// source is a single geolocation backend. It may fail; locator absorbs the failure.
type source interface {
	name() string
	lookup(ctx context.Context, ip string) (entity.LocationInfo, error)
}

// locator turns any source into a service.GeoLocator that never fails.
// Resolved locations are cached per IP and concurrent lookups of one IP share a single call.
type locator struct {
	src    source
	cache  *gocache.Cache
	group  singleflight.Group
	logger *slog.Logger
}

// newLocator wraps src. A cacheTTL <= 0 disables caching.
func newLocator(src source, cacheTTL time.Duration, logger *slog.Logger) *locator {
	l := &locator{
		src:    src,
		logger: logger,
	}
	if cacheTTL > 0 {
		l.cache = gocache.New(cacheTTL, 2*cacheTTL)
	}

	return l
}

var _ service.GeoLocator = (*locator)(nil)

func (l *locator) Resolve(ctx context.Context, ip string) entity.LocationInfo {
	if !Locatable(ip) {
		metrics.GeoLookups.WithLabelValues(l.src.name(), metrics.GeoSkipped).Inc()

		return entity.UnknownLocation()
	}

	if l.cache != nil {
		if v, ok := l.cache.Get(ip); ok {
			metrics.GeoLookups.WithLabelValues(l.src.name(), metrics.GeoCacheHit).Inc()

			return v.(entity.LocationInfo)
		}
	}

	// A caller that goes away must not fail the other callers sharing the lookup.
	lookupCtx := context.WithoutCancel(ctx)
	v, err, _ := l.group.Do(ip, func() (any, error) {
		return l.src.lookup(lookupCtx, ip)
	})
	if err != nil {
		metrics.GeoLookups.WithLabelValues(l.src.name(), metrics.GeoFailed).Inc()
		l.logger.WarnContext(ctx, "Geolocation lookup failed",
			slog.String("provider", l.src.name()),
			slog.String("ip", ip),
			slog.Any("error", err),
		)

		return entity.UnknownLocation()
	}

	loc := v.(entity.LocationInfo)
	metrics.GeoLookups.WithLabelValues(l.src.name(), metrics.GeoResolved).Inc()
	if l.cache != nil {
		l.cache.SetDefault(ip, loc)
	}

	return loc
}

// Locatable reports whether ip is worth sending to a provider: it must parse
// as an IP address and must not be loopback.
func Locatable(ip string) bool {
	if ip == "" || ip == constants.UnknownClientIP {
		return false
	}

	parsed := net.ParseIP(ip)

	return parsed != nil && !parsed.IsLoopback()
}

// normalize fills missing fields with the sentinel values.
func normalize(city, country, region string) entity.LocationInfo {
	loc := entity.LocationInfo{City: city, Country: country, Region: region}
	if loc.City == "" {
		loc.City = entity.UnknownCity
	}
	if loc.Country == "" {
		loc.Country = entity.UnknownCountry
	}

	return loc
}

// firstNonEmpty returns the first non-empty value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
