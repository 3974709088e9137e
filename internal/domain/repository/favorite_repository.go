package repository

import (
	"context"

	"inmomarket/internal/domain/entity"
	"inmomarket/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrFavoriteNotFound is returned when a favorite is not found.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when the publication was
	// already favorited by the user.
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository defines the interface for favorite database operations.
type FavoriteRepository interface {
	// Create persists a favorite for the (user, publication) pair.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes the favorite for the (user, publication) pair.
	Delete(ctx context.Context, userID, publicationID uuid.UUID) error

	// PageByUser retrieves a page of the user's favorites bundled with
	// their publications, newest first, with the total record count.
	PageByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]*entity.FavoriteListing, int64, error)
}
