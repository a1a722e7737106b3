package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"petnfc/config"
	"petnfc/internal/delivery/api"
	"petnfc/internal/delivery/api/router"
	"petnfc/internal/delivery/api/router/handler"
	"petnfc/internal/domain/entity"
	domainerrors "petnfc/internal/domain/errors"
	"petnfc/internal/infra/geo"
	"petnfc/internal/infra/pubsub"
	"petnfc/internal/infra/ratelimit"
	"petnfc/internal/infra/webhook"
	mockUsecase "petnfc/internal/mocks/usecase"
	"petnfc/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

const validBody = `{"petId":"pet-1","petName":"Luna","ownerPhone":"+34600111222","timestamp":"2026-10-14T09:30:00Z","userAgent":"Mozilla/5.0"}`

type testServerOptions struct {
	webhookURL  string
	geoURL      string
	petUsecase  *mockUsecase.MockPetUsecase
	rateWindow  time.Duration
	geoRequests *atomic.Int32
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestServer builds the real API handler with real infra behind it.
func newTestServer(t *testing.T, opts testServerOptions) *echo.Echo {
	t.Helper()

	logger := discardLogger()

	if opts.geoURL == "" {
		geoServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if opts.geoRequests != nil {
				opts.geoRequests.Add(1)
			}
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		t.Cleanup(geoServer.Close)
		opts.geoURL = geoServer.URL
	}
	if opts.rateWindow == 0 {
		opts.rateWindow = 5 * time.Minute
	}
	if opts.petUsecase == nil {
		opts.petUsecase = mockUsecase.NewMockPetUsecase(t)
	}

	publisher, err := pubsub.NewEventPublisher(pubsub.PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: logger,
	})
	require.NoError(t, err)

	notificationUC := impl.NewNotificationService(
		ratelimit.NewMemoryLimiter(opts.rateWindow),
		geo.NewHTTPLocator(geo.HTTPOptions{BaseURL: opts.geoURL, Timeout: time.Second}, logger),
		webhook.NewDispatcher(webhook.Options{
			URL:      opts.webhookURL,
			Timeout:  time.Second,
			Source:   "pet-nfc",
			Simulate: opts.webhookURL == "",
		}, logger),
		publisher,
		logger,
	)

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	e := api.NewHandler(cfg, logger, router.RouterParams{
		NotifyHandler: handler.NewNotifyHandler(handler.NotifyHandlerParams{NotificationUC: notificationUC, Logger: logger}),
		PetHandler:    handler.NewPetHandler(handler.PetHandlerParams{PetUC: opts.petUsecase, Logger: logger}),
	})

	return e
}

func doRequest(e *echo.Echo, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func TestNotify_Simulation(t *testing.T) {
	var geoRequests atomic.Int32
	e := newTestServer(t, testServerOptions{geoRequests: &geoRequests})

	rec := doRequest(e, http.MethodPost, "/api/v1/notify", validBody, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, true, body["isSimulation"])
	assert.True(t, strings.HasPrefix(body["webhookId"].(string), "simulated_"), body["webhookId"])
	assert.Equal(t, entity.LocationUnavailable, body["location"])

	ts, err := time.Parse("2006-01-02T15:04:05.000Z", body["timestamp"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)

	// no client IP header means no geolocation request
	assert.Zero(t, geoRequests.Load())
}

func TestNotify_LegacyPath(t *testing.T) {
	e := newTestServer(t, testServerOptions{})

	rec := doRequest(e, http.MethodPost, "/.netlify/functions/notify-whatsapp", validBody, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["ok"])
}

func TestNotify_RateLimited(t *testing.T) {
	e := newTestServer(t, testServerOptions{})
	headers := map[string]string{"X-Forwarded-For": "198.51.100.4, 10.0.0.1"}

	first := doRequest(e, http.MethodPost, "/api/v1/notify", validBody, headers)
	require.Equal(t, http.StatusOK, first.Code)

	second := doRequest(e, http.MethodPost, "/api/v1/notify", validBody, headers)

	require.Equal(t, http.StatusTooManyRequests, second.Code)
	body := decodeBody(t, second)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, domainerrors.ErrRateLimited.Message(), body["error"])
	assert.Equal(t, "RATE_LIMITED", body["code"])
	assert.Equal(t, "300", second.Header().Get("Retry-After"))

	// another client IP for the same pet is not throttled
	other := doRequest(e, http.MethodPost, "/api/v1/notify", validBody, map[string]string{"X-Forwarded-For": "198.51.100.5"})
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestNotify_MissingFields(t *testing.T) {
	e := newTestServer(t, testServerOptions{})

	tests := []struct {
		name string
		body string
	}{
		{name: "missing owner phone", body: `{"petId":"pet-1","petName":"Luna"}`},
		{name: "blank pet name", body: `{"petId":"pet-1","petName":"  ","ownerPhone":"+34600111222"}`},
		{name: "empty object", body: `{}`},
		{name: "malformed json", body: `{"petId":`},
		{name: "numeric pet id", body: `{"petId":123,"petName":"Luna","ownerPhone":"+34600111222"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodPost, "/api/v1/notify", tt.body, nil)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, false, body["ok"])
			assert.Equal(t, "Missing required fields", body["error"])
			assert.Equal(t, "VALIDATION_FAILED", body["code"])
		})
	}
}

func TestNotify_MethodNotAllowed(t *testing.T) {
	e := newTestServer(t, testServerOptions{})

	for _, path := range []string{"/api/v1/notify", "/.netlify/functions/notify-whatsapp"} {
		rec := doRequest(e, http.MethodGet, path, "", nil)

		require.Equal(t, http.StatusMethodNotAllowed, rec.Code, path)
		body := decodeBody(t, rec)
		assert.Equal(t, false, body["ok"])
		assert.Equal(t, "Method not allowed", body["error"])
	}
}

func TestNotify_WebhookFailure(t *testing.T) {
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream down")
	}))
	defer hook.Close()

	e := newTestServer(t, testServerOptions{webhookURL: hook.URL})

	rec := doRequest(e, http.MethodPost, "/api/v1/notify", validBody, nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["ok"])
	assert.Contains(t, body["error"], "502")
	assert.Equal(t, "WEBHOOK_UPSTREAM_FAILED", body["code"])
	assert.NotContains(t, body, "details")
}

func TestNotify_LiveWithLocation(t *testing.T) {
	var geoPath atomic.Value
	geoServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		geoPath.Store(r.URL.Path)
		_, _ = io.WriteString(w, `{"city":"Madrid","country_name":"Spain","region":"Madrid"}`)
	}))
	defer geoServer.Close()

	var payload webhook.Payload
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&payload)
		_, _ = io.WriteString(w, `{"executionId":"exec-77"}`)
	}))
	defer hook.Close()

	e := newTestServer(t, testServerOptions{webhookURL: hook.URL, geoURL: geoServer.URL})

	rec := doRequest(e, http.MethodPost, "/api/v1/notify", validBody, map[string]string{
		"X-Forwarded-For": " 203.0.113.9 , 10.0.0.1",
		"X-Request-Id":    "req-abc",
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "exec-77", body["webhookId"])
	assert.Equal(t, "Madrid, Spain", body["location"])
	assert.Equal(t, false, body["isSimulation"])
	assert.Equal(t, "req-abc", rec.Header().Get("X-Request-Id"))

	assert.Equal(t, "/203.0.113.9/json/", geoPath.Load())
	assert.Equal(t, "Luna", payload.PetName)
	assert.Equal(t, "+34600111222", payload.OwnerPhone)
	assert.Equal(t, "Madrid, Spain", payload.Location)
	assert.Equal(t, body["timestamp"], payload.Timestamp)
	assert.Equal(t, "pet-nfc", payload.Source)
}

func TestNotify_RealIPFallback(t *testing.T) {
	var geoPath atomic.Value
	geoServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		geoPath.Store(r.URL.Path)
		_, _ = io.WriteString(w, `{"locality":"Lyon","country":"FR"}`)
	}))
	defer geoServer.Close()

	e := newTestServer(t, testServerOptions{geoURL: geoServer.URL})

	rec := doRequest(e, http.MethodPost, "/api/v1/notify", validBody, map[string]string{"X-Real-Ip": "192.0.2.44"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Lyon, FR", decodeBody(t, rec)["location"])
	assert.Equal(t, "/192.0.2.44/json/", geoPath.Load())
}

func TestNotify_LoopbackSkipsGeolocation(t *testing.T) {
	var geoRequests atomic.Int32
	e := newTestServer(t, testServerOptions{geoRequests: &geoRequests})

	rec := doRequest(e, http.MethodPost, "/api/v1/notify", validBody, map[string]string{"X-Forwarded-For": "127.0.0.1"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.LocationUnavailable, decodeBody(t, rec)["location"])
	assert.Zero(t, geoRequests.Load())
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(t, testServerOptions{})

	rec := doRequest(e, http.MethodGet, "/health", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, map[string]any{"status": "ok"}, body["data"])
}

func TestMetricsEndpoint(t *testing.T) {
	e := newTestServer(t, testServerOptions{})
	doRequest(e, http.MethodPost, "/api/v1/notify", validBody, nil)

	rec := doRequest(e, http.MethodGet, "/metrics", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "petnfc_owner_alerts_total")
}

func TestNotify_BodyTooLarge(t *testing.T) {
	e := newTestServer(t, testServerOptions{})

	body := `{"petId":"pet-1","petName":"` + strings.Repeat("a", 200<<10) + `","ownerPhone":"+34600111222"}`
	rec := doRequest(e, http.MethodPost, "/api/v1/notify", body, nil)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", decodeBody(t, rec)["code"])
}

func TestUnknownRoute(t *testing.T) {
	e := newTestServer(t, testServerOptions{})

	rec := doRequest(e, http.MethodGet, "/api/v1/unknown", "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
