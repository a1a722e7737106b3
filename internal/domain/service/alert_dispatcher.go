package service

import (
	"context"

	"petnfc/internal/domain/entity"
)

// AlertMessage is what the owner alert webhook receives.
type AlertMessage struct {
	PetName    string
	OwnerPhone string
	Location   string
	Timestamp  string

	// RequestID is forwarded as X-Request-Id when present
	RequestID string
}

// AlertDispatcher forwards owner alerts to the automation webhook.
type AlertDispatcher interface {
	// Send delivers the alert. Errors are domain AppErrors: a missing webhook
	// URL or a non-2xx webhook response.
	Send(ctx context.Context, msg *AlertMessage) (*entity.WebhookResult, error)

	// IsSimulation reports whether alerts are only logged instead of sent.
	IsSimulation() bool
}
