package usecase

import (
	"context"

	"petnfc/internal/domain/entity"
)

// NotificationUsecase defines the owner alert use case
type NotificationUsecase interface {
	// NotifyOwner throttles, locates and dispatches an alert for a scanned tag.
	// Rate limiting surfaces as *domainerrors.RateLimitError, dispatch failures
	// as webhook AppErrors.
	NotifyOwner(ctx context.Context, alert *entity.OwnerAlert) (*entity.AlertReceipt, error)
}
