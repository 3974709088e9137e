package repository

import (
	"context"

	"inmomarket/internal/domain/entity"
	"inmomarket/internal/errors"

	"github.com/google/uuid"
)

// ErrPublicationNotFound is returned when a publication is not found.
var ErrPublicationNotFound = errors.New("publication not found")

// PublicationRepository defines the interface for listing-related database operations.
type PublicationRepository interface {
	// Create persists a new publication with its availability windows.
	Create(ctx context.Context, publication *entity.Publication) error

	// FindByID retrieves a publication by its unique ID, including its
	// availability windows.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Publication, error)

	// PageActive retrieves a page of active publications for the home
	// feed, newest first, with the total active record count.
	PageActive(ctx context.Context, page, size int) ([]*entity.Publication, int64, error)

	// PageByOwner retrieves a page of the user's own publications,
	// newest first, with the total record count.
	PageByOwner(ctx context.Context, ownerID uuid.UUID, page, size int) ([]*entity.Publication, int64, error)

	// UpdateStatus changes the moderation status of a publication.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PublicationStatus) error
}
