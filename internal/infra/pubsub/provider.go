// Package pubsub publishes owner alert events to a message queue.
package pubsub

import (
	"context"
	"log/slog"
	"strconv"

	"petnfc/config"
	"petnfc/internal/domain/constants"
	"petnfc/internal/domain/service"
	"petnfc/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when the event stream is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishAlertEvent(_ context.Context, event *service.AlertEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("pet_id", event.PetID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// meteredPublisher counts publish results per provider
type meteredPublisher struct {
	service.EventPublisher
	provider string
}

func (p *meteredPublisher) PublishAlertEvent(ctx context.Context, event *service.AlertEvent) error {
	err := p.EventPublisher.PublishAlertEvent(ctx, event)

	result := "published"
	if err != nil {
		result = "failed"
	}
	metrics.AlertEvents.WithLabelValues(p.provider, result).Inc()

	return err
}

func eventAttributes(event *service.AlertEvent) map[string]string {
	attributes := map[string]string{
		"pet_id":        event.PetID,
		"is_simulation": strconv.FormatBool(event.IsSimulation),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.Events
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Alert events not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case constants.EventProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for alert events",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.EventProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher for alert events",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown events provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return &meteredPublisher{EventPublisher: publisher, provider: cfg.Provider}, nil
}
