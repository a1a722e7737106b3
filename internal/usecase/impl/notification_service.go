// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "petnfc/internal/delivery/context"
	"petnfc/internal/domain/entity"
	domainerrors "petnfc/internal/domain/errors"
	"petnfc/internal/domain/service"
	"petnfc/internal/infra/metrics"
	"petnfc/internal/usecase"
	"petnfc/internal/util"

	"github.com/pkg/errors"
)

// receiptTimeLayout is ISO-8601 in UTC with millisecond precision
const receiptTimeLayout = "2006-01-02T15:04:05.000Z"

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	limiter    service.RateLimiter
	locator    service.GeoLocator
	dispatcher service.AlertDispatcher
	publisher  service.EventPublisher
	logger     *slog.Logger
	now        func() time.Time
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(
	limiter service.RateLimiter,
	locator service.GeoLocator,
	dispatcher service.AlertDispatcher,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		limiter:    limiter,
		locator:    locator,
		dispatcher: dispatcher,
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,
	}
}

// NotifyOwner tells the owner their pet's tag was scanned.
func (srv *notificationService) NotifyOwner(ctx context.Context, alert *entity.OwnerAlert) (*entity.AlertReceipt, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Processing owner alert",
		slog.String("pet_id", alert.PetID),
		slog.String("client_ip", alert.ClientIP),
	)

	result, err := srv.limiter.Allow(ctx, alert.PetID, alert.ClientIP)
	if err != nil {
		// A broken throttle store must not keep a found pet from reaching its owner.
		logger.Warn("Rate limit check failed, allowing alert",
			slog.String("pet_id", alert.PetID),
			slog.Any("error", err),
		)
	} else if !result.Allow {
		metrics.OwnerAlerts.WithLabelValues(metrics.OutcomeRateLimited).Inc()
		logger.Info("Owner alert rate limited",
			slog.String("pet_id", alert.PetID),
			slog.String("client_ip", alert.ClientIP),
			slog.Duration("retry_after", result.RetryAfter),
		)

		return nil, domainerrors.NewRateLimitError(result.RetryAfter)
	}

	location := srv.locator.Resolve(ctx, alert.ClientIP)
	locationText := location.Text()
	timestamp := srv.now().UTC().Format(receiptTimeLayout)

	webhook, err := srv.dispatcher.Send(ctx, &service.AlertMessage{
		PetName:    alert.PetName,
		OwnerPhone: alert.OwnerPhone,
		Location:   locationText,
		Timestamp:  timestamp,
		RequestID:  alert.RequestID,
	})
	if err != nil {
		metrics.OwnerAlerts.WithLabelValues(metrics.OutcomeFailed).Inc()
		logger.Error("Failed to dispatch owner alert",
			slog.String("pet_id", alert.PetID),
			slog.String("owner_phone", util.MaskPhone(alert.OwnerPhone)),
			slog.Any("error", err),
		)

		var appErr domainerrors.AppError
		if !errors.As(err, &appErr) {
			err = domainerrors.ErrWebhookUpstream.Withf("%s", err.Error())
		}

		return nil, errors.Wrap(err, "failed to dispatch owner alert")
	}

	simulated := srv.dispatcher.IsSimulation()
	if simulated {
		metrics.OwnerAlerts.WithLabelValues(metrics.OutcomeSimulated).Inc()
	} else {
		metrics.OwnerAlerts.WithLabelValues(metrics.OutcomeSent).Inc()
	}

	logger.Info("Owner alert processed",
		slog.String("pet_id", alert.PetID),
		slog.String("pet_name", alert.PetName),
		slog.String("owner_phone", util.MaskPhone(alert.OwnerPhone)),
		slog.String("location", locationText),
		slog.String("timestamp", timestamp),
		slog.String("webhook_id", webhook.WebhookID),
		slog.Bool("is_simulation", simulated),
		slog.String("user_agent", alert.UserAgent),
		slog.String("page_url", alert.PageURL),
	)

	// Publishing is best effort once the owner has been alerted.
	if err := srv.publisher.PublishAlertEvent(ctx, &service.AlertEvent{
		RequestID:    alert.RequestID,
		PetID:        alert.PetID,
		PetName:      alert.PetName,
		Location:     locationText,
		Timestamp:    timestamp,
		WebhookID:    webhook.WebhookID,
		IsSimulation: simulated,
	}); err != nil {
		logger.Warn("Failed to publish alert event",
			slog.String("pet_id", alert.PetID),
			slog.Any("error", err),
		)
	}

	return &entity.AlertReceipt{
		WebhookID:    webhook.WebhookID,
		Location:     locationText,
		Timestamp:    timestamp,
		IsSimulation: simulated,
	}, nil
}
