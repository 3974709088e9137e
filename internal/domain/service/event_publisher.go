package service

import (
	"context"
	"time"
)

// Visit lifecycle event types.
const (
	VisitEventRequested = "visit.requested"
	VisitEventAccepted  = "visit.accepted"
	VisitEventRejected  = "visit.rejected"
	VisitEventCancelled = "visit.cancelled"
	VisitEventCompleted = "visit.completed"
)

// VisitEvent describes a visit-request lifecycle transition published
// to downstream consumers (mailers, analytics).
type VisitEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	EventType     string    `json:"event_type"`
	VisitID       string    `json:"visit_id"`
	PublicationID string    `json:"publication_id"`
	VisitorID     string    `json:"visitor_id"`
	OwnerID       string    `json:"owner_id"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishVisitEvent publishes a visit lifecycle event for async processing
	PublishVisitEvent(ctx context.Context, event *VisitEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
