package service

import (
	"context"

	"petnfc/internal/domain/entity"
)

// GeoLocator resolves a client IP to an approximate location.
type GeoLocator interface {
	// Resolve never fails: any lookup problem yields entity.UnknownLocation().
	Resolve(ctx context.Context, ip string) entity.LocationInfo
}
