// Package webhook delivers owner alerts to the automation webhook that relays them over WhatsApp.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	deliverycontext "petnfc/internal/delivery/context"
	"petnfc/internal/domain/entity"
	domainerrors "petnfc/internal/domain/errors"
	"petnfc/internal/domain/service"
	"petnfc/internal/infra/metrics"
	"petnfc/internal/util"
)

const (
	simulatedIDPrefix = "simulated_"
	defaultWebhookID  = "success"
	userAgent         = "petnfc/1"

	// maxErrorBodyBytes bounds how much of a failed response is kept for logging
	maxErrorBodyBytes = 4 << 10
)

// Payload is the JSON body POSTed to the webhook.
type Payload struct {
	PetName    string `json:"petName"`
	OwnerPhone string `json:"ownerPhone"`
	Location   string `json:"location"`
	Timestamp  string `json:"timestamp"`
	Source     string `json:"source"`
}

// Options configures a Dispatcher.
type Options struct {
	// URL of the webhook. Ignored in simulation mode.
	URL     string
	Timeout time.Duration
	Source  string
	// Simulate logs alerts instead of sending them.
	Simulate bool
	// Client is optional; a client with Timeout is created when nil.
	Client *http.Client
	// Now is optional and only used for simulated ids.
	Now func() time.Time
}

// Dispatcher implements service.AlertDispatcher over HTTP.
type Dispatcher struct {
	url      string
	source   string
	simulate bool
	client   *http.Client
	now      func() time.Time
	logger   *slog.Logger
}

var _ service.AlertDispatcher = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher.
func NewDispatcher(opts Options, logger *slog.Logger) *Dispatcher {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Dispatcher{
		url:      opts.URL,
		source:   opts.Source,
		simulate: opts.Simulate,
		client:   client,
		now:      now,
		logger:   logger,
	}
}

// IsSimulation implements service.AlertDispatcher.
func (d *Dispatcher) IsSimulation() bool {
	return d.simulate
}

// Send implements service.AlertDispatcher.
func (d *Dispatcher) Send(ctx context.Context, msg *service.AlertMessage) (*entity.WebhookResult, error) {
	payload := Payload{
		PetName:    msg.PetName,
		OwnerPhone: msg.OwnerPhone,
		Location:   msg.Location,
		Timestamp:  msg.Timestamp,
		Source:     d.source,
	}

	if d.simulate {
		return d.simulateSend(ctx, payload), nil
	}

	return d.post(ctx, payload, msg.RequestID)
}

func (d *Dispatcher) simulateSend(ctx context.Context, payload Payload) *entity.WebhookResult {
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)
	logger.InfoContext(ctx, "Simulation mode, webhook not called",
		slog.String("pet_name", payload.PetName),
		slog.String("owner_phone", util.MaskPhone(payload.OwnerPhone)),
		slog.String("location", payload.Location),
		slog.String("timestamp", payload.Timestamp),
		slog.String("source", payload.Source),
	)

	return &entity.WebhookResult{
		Success:   true,
		WebhookID: simulatedIDPrefix + strconv.FormatInt(d.now().UnixMilli(), 10),
	}
}

func (d *Dispatcher) post(ctx context.Context, payload Payload, requestID string) (*entity.WebhookResult, error) {
	if d.url == "" {
		return nil, domainerrors.ErrWebhookNotConfigured
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, domainerrors.ErrWebhookUpstream.
			Withf("Failed to encode webhook payload: %v", err).
			WithDetails(err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return nil, domainerrors.ErrWebhookNotConfigured.WithDetails(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	start := time.Now()
	resp, err := d.client.Do(req)
	if err != nil {
		metrics.WebhookDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		logger.ErrorContext(ctx, "Webhook request failed",
			slog.String("url", util.RedactURL(d.url)),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrWebhookUpstream.Withf("Notification webhook unreachable").WithDetails(err.Error())
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()
	metrics.WebhookDuration.WithLabelValues(strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errorText, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		logger.ErrorContext(ctx, "Webhook returned an error",
			slog.String("url", util.RedactURL(d.url)),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(errorText)),
		)

		return nil, domainerrors.ErrWebhookUpstream.
			Withf("Notification webhook failed: %s", statusLine(resp.StatusCode)).
			WithDetails(string(errorText))
	}

	result := &entity.WebhookResult{Success: true, WebhookID: defaultWebhookID}

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err == nil {
		if id := webhookID(decoded); id != "" {
			result.WebhookID = id
		}
	}

	logger.InfoContext(ctx, "Webhook processed owner alert",
		slog.String("webhook_id", result.WebhookID),
	)

	return result, nil
}

// webhookID picks the first usable identifier. n8n and similar tools answer
// with webhookId, id or executionId, as a string or a number.
func webhookID(body map[string]any) string {
	for _, key := range []string{"webhookId", "id", "executionId"} {
		switch v := body[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}

	return ""
}

func statusLine(code int) string {
	if text := http.StatusText(code); text != "" {
		return fmt.Sprintf("%d %s", code, text)
	}

	return strconv.Itoa(code)
}
