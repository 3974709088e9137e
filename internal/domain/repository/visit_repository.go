// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"inmomarket/internal/domain/entity"
	"inmomarket/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for visit persistence.
var (
	// ErrVisitNotFound is returned when a visit request is not found.
	ErrVisitNotFound = errors.New("visit request not found")
	// ErrVisitConflict is returned when a guarded transition finds the
	// record no longer in the expected status, meaning another actor
	// responded first.
	ErrVisitConflict = errors.New("visit request status changed concurrently")
)

// VisitRepository defines the interface for visit-request database operations.
type VisitRepository interface {
	// Create persists a new visit request in PENDING state.
	Create(ctx context.Context, visit *entity.VisitRequest) error

	// FindByID retrieves a visit request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.VisitRequest, error)

	// PageByVisitor retrieves a page of the visits a user requested,
	// newest first, along with the total number of records.
	PageByVisitor(ctx context.Context, visitorID uuid.UUID, page, size int) ([]*entity.VisitRequest, int64, error)

	// PageByOwner retrieves a page of the visits requested on a user's
	// publications, newest first, along with the total record count.
	PageByOwner(ctx context.Context, ownerID uuid.UUID, page, size int) ([]*entity.VisitRequest, int64, error)

	// UpdateTransition persists the mutated visit record, guarded by a
	// compare-and-swap on the status column: the row is only written
	// if it is still in the expected prior status. Returns
	// ErrVisitConflict when another actor transitioned it first.
	UpdateTransition(ctx context.Context, visit *entity.VisitRequest, from entity.VisitStatus) error

	// FindPendingByOwner retrieves every PENDING request addressed to
	// the user as publication owner, newest first.
	FindPendingByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.VisitRequest, error)

	// FindRespondedByVisitor retrieves every non-PENDING request made
	// by the user, most recently responded first.
	FindRespondedByVisitor(ctx context.Context, visitorID uuid.UUID) ([]*entity.VisitRequest, error)

	// CountUnreadRequests counts PENDING requests addressed to the
	// owner that the owner has not marked read.
	CountUnreadRequests(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// CountUnreadResponses counts responded requests of the visitor
	// that the visitor has not marked read.
	CountUnreadResponses(ctx context.Context, visitorID uuid.UUID) (int64, error)

	// MarkRequestsRead flags every pending request addressed to the
	// owner as read.
	MarkRequestsRead(ctx context.Context, ownerID uuid.UUID) error

	// MarkResponsesRead flags every responded request of the visitor
	// as read.
	MarkResponsesRead(ctx context.Context, visitorID uuid.UUID) error

	// FindElapsedAccepted retrieves up to limit ACCEPTED visits whose
	// scheduled moment lies before the given instant. Used by the
	// completion sweeper.
	FindElapsedAccepted(ctx context.Context, before time.Time, limit int) ([]*entity.VisitRequest, error)
}
