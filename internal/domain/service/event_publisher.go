package service

import (
	"context"
)

// AlertEvent records a dispatched owner alert for downstream consumers.
// It never carries the owner phone.
type AlertEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	PetID        string `json:"pet_id"`
	PetName      string `json:"pet_name"`
	Location     string `json:"location"`
	Timestamp    string `json:"timestamp"`
	WebhookID    string `json:"webhook_id"`
	IsSimulation bool   `json:"is_simulation"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlertEvent publishes an owner alert event
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
