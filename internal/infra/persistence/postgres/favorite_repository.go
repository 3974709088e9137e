package postgres

import (
	"context"

	"inmomarket/internal/domain/entity"
	domainerrors "inmomarket/internal/domain/errors"
	"inmomarket/internal/domain/repository"
	"inmomarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// Create persists a favorite for the (user, publication) pair.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrFavoriteNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	return nil
}

// Delete removes the favorite for the (user, publication) pair.
func (repo *favoriteRepository) Delete(ctx context.Context, userID, publicationID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND publication_id = ?", userID, publicationID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// PageByUser retrieves a page of the user's favorites bundled with
// their publications, newest first.
func (repo *favoriteRepository) PageByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]*entity.FavoriteListing, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count favorites")
	}

	var favoriteModels []*model.FavoriteModel
	if err := repo.db.WithContext(ctx).
		Preload("Publication").
		Preload("Publication.AvailableTimes").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&favoriteModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to page favorites")
	}

	listings := make([]*entity.FavoriteListing, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		listing := &entity.FavoriteListing{
			Favorite: *toFavoriteDomain(favoriteM),
		}
		if favoriteM.Publication != nil {
			listing.Publication = toPublicationDomain(favoriteM.Publication)
		}
		listings = append(listings, listing)
	}

	return listings, total, nil
}

// --- Converters ---

func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	return &entity.Favorite{
		ID:            data.ID,
		UserID:        data.UserID,
		PublicationID: data.PublicationID,
		CreatedAt:     data.CreatedAt,
	}
}

func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	return &model.FavoriteModel{
		ID:            data.ID,
		UserID:        data.UserID,
		PublicationID: data.PublicationID,
		CreatedAt:     data.CreatedAt,
	}
}
