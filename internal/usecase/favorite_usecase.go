package usecase

import (
	"context"

	"inmomarket/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase manages a user's saved publications.
type FavoriteUsecase interface {
	// Add saves a publication to the user's favorites.
	Add(ctx context.Context, userID, publicationID uuid.UUID) (*entity.Favorite, error)

	// Remove deletes a publication from the user's favorites.
	Remove(ctx context.Context, userID, publicationID uuid.UUID) error

	// ListByUser pages through the user's favorites with their
	// publications.
	ListByUser(ctx context.Context, userID uuid.UUID, page, size int) (*Page[*entity.FavoriteListing], error)
}
