package usecase

import (
	"context"
	"time"

	"inmomarket/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ScheduleVisitInput defines the data a visitor submits to request a visit.
type ScheduleVisitInput struct {
	PublicationID uuid.UUID
	VisitDate     string // "2006-01-02"
	VisitTime     string // "15:04:05"
	UserMessage   string
}

// AcceptVisitInput defines the owner's acceptance of a visit request.
type AcceptVisitInput struct {
	MeetingLocation string
	OwnerResponse   string // optional additional message to the visitor
}

// VisitUsecase drives the visit-request state machine.
type VisitUsecase interface {
	// Schedule creates a PENDING visit request on behalf of the visitor.
	// The date and time must fall inside one of the publication's
	// availability windows.
	Schedule(ctx context.Context, visitorID uuid.UUID, input *ScheduleVisitInput) (*entity.VisitRequest, error)

	// ListRequested pages through the visits the user requested.
	ListRequested(ctx context.Context, visitorID uuid.UUID, page, size int) (*Page[*entity.VisitRequest], error)

	// ListReceived pages through the visits requested on the user's
	// publications.
	ListReceived(ctx context.Context, ownerID uuid.UUID, page, size int) (*Page[*entity.VisitRequest], error)

	// Accept transitions a PENDING request to ACCEPTED. Owner only.
	Accept(ctx context.Context, ownerID, visitID uuid.UUID, input *AcceptVisitInput) (*entity.VisitRequest, error)

	// Reject transitions a PENDING request to REJECTED. Owner only.
	Reject(ctx context.Context, ownerID, visitID uuid.UUID, rejectionReason string) (*entity.VisitRequest, error)

	// Cancel transitions a PENDING request to CANCELLED. Visitor only.
	Cancel(ctx context.Context, visitorID, visitID uuid.UUID) (*entity.VisitRequest, error)

	// CompleteElapsed transitions ACCEPTED visits whose scheduled
	// moment lies before now to COMPLETED and returns how many were
	// swept. Invoked by the background worker, not exposed over HTTP.
	CompleteElapsed(ctx context.Context, now time.Time) (int, error)
}
