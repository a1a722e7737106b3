package geo

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"petnfc/internal/domain/constants"
	"petnfc/internal/domain/entity"
	"petnfc/internal/domain/service"

	"github.com/pkg/errors"
)

// providerResponse accepts both field conventions seen across geo-IP APIs
// (ipapi.co style city/country_name/region and locality/country/state).
type providerResponse struct {
	City        string `json:"city"`
	Locality    string `json:"locality"`
	CountryName string `json:"country_name"`
	Country     string `json:"country"`
	Region      string `json:"region"`
	State       string `json:"state"`

	// ipapi.co answers 200 with {"error": true, "reason": "..."} when throttled
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// HTTPOptions configures an HTTP geolocation provider.
type HTTPOptions struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
	// Client is optional; a client with Timeout is created when nil.
	Client *http.Client
}

type httpSource struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

// NewHTTPLocator creates a GeoLocator that queries {BaseURL}/{ip}/json/.
func NewHTTPLocator(opts HTTPOptions, logger *slog.Logger) service.GeoLocator {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	src := &httpSource{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		timeout: opts.Timeout,
		client:  client,
	}

	return newLocator(src, opts.CacheTTL, logger)
}

func (s *httpSource) name() string {
	return constants.GeoProviderHTTP
}

func (s *httpSource) lookup(ctx context.Context, ip string) (entity.LocationInfo, error) {
	// The deadline is what bounds the whole exchange, body read included.
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	endpoint := s.baseURL + "/" + url.PathEscape(ip) + "/json/"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entity.LocationInfo{}, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return entity.LocationInfo{}, errors.Wrap(err, "geo provider request")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return entity.LocationInfo{}, errors.Errorf("geo provider returned HTTP %d", resp.StatusCode)
	}

	var body providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entity.LocationInfo{}, errors.Wrap(err, "decode geo provider response")
	}
	if body.Error {
		return entity.LocationInfo{}, errors.Errorf("geo provider error: %s", body.Reason)
	}

	return normalize(
		firstNonEmpty(body.City, body.Locality),
		firstNonEmpty(body.CountryName, body.Country),
		firstNonEmpty(body.Region, body.State),
	), nil
}
