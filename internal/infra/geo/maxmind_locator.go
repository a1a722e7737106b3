package geo

import (
	"context"
	"log/slog"
	"net"
	"time"

	"petnfc/internal/domain/constants"
	"petnfc/internal/domain/entity"

	"github.com/oschwald/geoip2-golang"
	"github.com/pkg/errors"
)

const maxmindLanguage = "en"

// cityReader is the subset of *geoip2.Reader used here.
type cityReader interface {
	City(ip net.IP) (*geoip2.City, error)
	Close() error
}

type maxmindSource struct {
	reader cityReader
}

// MaxMindLocator resolves IPs from a local GeoLite2/GeoIP2 City database.
type MaxMindLocator struct {
	*locator
	reader cityReader
}

// NewMaxMindLocator opens the database at path.
func NewMaxMindLocator(path string, cacheTTL time.Duration, logger *slog.Logger) (*MaxMindLocator, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open geoip database %s", path)
	}

	return newMaxMindLocator(reader, cacheTTL, logger), nil
}

func newMaxMindLocator(reader cityReader, cacheTTL time.Duration, logger *slog.Logger) *MaxMindLocator {
	return &MaxMindLocator{
		locator: newLocator(&maxmindSource{reader: reader}, cacheTTL, logger),
		reader:  reader,
	}
}

// Close releases the database.
func (l *MaxMindLocator) Close() error {
	return errors.WithStack(l.reader.Close())
}

func (s *maxmindSource) name() string {
	return constants.GeoProviderMaxMind
}

func (s *maxmindSource) lookup(_ context.Context, ip string) (entity.LocationInfo, error) {
	record, err := s.reader.City(net.ParseIP(ip))
	if err != nil {
		return entity.LocationInfo{}, errors.Wrap(err, "geoip city lookup")
	}

	var region string
	if len(record.Subdivisions) > 0 {
		region = record.Subdivisions[0].Names[maxmindLanguage]
	}

	return normalize(
		record.City.Names[maxmindLanguage],
		record.Country.Names[maxmindLanguage],
		region,
	), nil
}
