package usecase

import (
	"context"

	"inmomarket/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePublicationInput defines the data required to publish a listing.
type CreatePublicationInput struct {
	Title          string
	Description    string
	Address        string
	Neighborhood   string
	Municipality   string
	Department     string
	Price          int64
	Bedrooms       int
	Floors         int
	Size           float64
	Parking        bool
	Furnished      bool
	Latitude       float64
	Longitude      float64
	ImageURLs      []string
	AvailableTimes []entity.AvailabilityWindow
}

// PublicationUsecase manages property listings.
type PublicationUsecase interface {
	// Create publishes a new listing owned by the given user.
	Create(ctx context.Context, ownerID uuid.UUID, input *CreatePublicationInput) (*entity.Publication, error)

	// GetByID retrieves a single listing with its availability windows.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Publication, error)

	// ListHome pages through active listings for the public home feed.
	// Pages are served from the cache when fresh.
	ListHome(ctx context.Context, page, size int) (*Page[*entity.Publication], error)

	// ListByOwner pages through the user's own listings.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page, size int) (*Page[*entity.Publication], error)
}
