package geo

import (
	"context"
	"log/slog"

	"petnfc/config"
	"petnfc/internal/domain/constants"
	"petnfc/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocatorParams holds dependencies for the GeoLocator, injected by Fx
type LocatorParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewGeoLocator selects the geolocation provider from configuration
func NewGeoLocator(params LocatorParams) (service.GeoLocator, error) {
	cfg := params.Config.Geo

	switch cfg.Provider {
	case "", constants.GeoProviderHTTP:
		params.Logger.Info("Using HTTP geolocation provider",
			slog.String("provider_url", cfg.ProviderURL),
			slog.Duration("timeout", cfg.Timeout),
		)

		return NewHTTPLocator(HTTPOptions{
			BaseURL:  cfg.ProviderURL,
			Timeout:  cfg.Timeout,
			CacheTTL: cfg.CacheTTL,
		}, params.Logger), nil

	case constants.GeoProviderMaxMind:
		if cfg.DatabasePath == "" {
			return nil, errors.New("database path is required for maxmind geolocation provider")
		}

		loc, err := NewMaxMindLocator(cfg.DatabasePath, cfg.CacheTTL, params.Logger)
		if err != nil {
			return nil, err
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return loc.Close()
			},
		})

		params.Logger.Info("Using MaxMind geolocation database",
			slog.String("path", cfg.DatabasePath),
		)

		return loc, nil

	default:
		return nil, errors.Errorf("unknown geolocation provider: %s", cfg.Provider)
	}
}
