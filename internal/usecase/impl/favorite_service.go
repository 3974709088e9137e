package impl

import (
	"context"
	"log/slog"
	"time"

	"inmomarket/internal/domain/entity"
	domainerrors "inmomarket/internal/domain/errors"
	"inmomarket/internal/domain/repository"
	"inmomarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo    repository.FavoriteRepository
	publicationRepo repository.PublicationRepository
	logger          *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo    repository.FavoriteRepository
	PublicationRepo repository.PublicationRepository
	Logger          *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo:    params.FavoriteRepo,
		publicationRepo: params.PublicationRepo,
		logger:          params.Logger,
	}
}

// Add saves a publication to the user's favorites.
func (srv *favoriteService) Add(ctx context.Context, userID, publicationID uuid.UUID) (*entity.Favorite, error) {
	if _, err := srv.publicationRepo.FindByID(ctx, publicationID); err != nil {
		if errors.Is(err, repository.ErrPublicationNotFound) {
			return nil, domainerrors.ErrPublicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find publication to favorite")
	}

	favorite := &entity.Favorite{
		ID:            uuid.New(),
		UserID:        userID,
		PublicationID: publicationID,
		CreatedAt:     time.Now(),
	}

	if err := srv.favoriteRepo.Create(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			return nil, domainerrors.ErrFavoriteAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create favorite")
	}

	return favorite, nil
}

// Remove deletes a publication from the user's favorites.
func (srv *favoriteService) Remove(ctx context.Context, userID, publicationID uuid.UUID) error {
	if err := srv.favoriteRepo.Delete(ctx, userID, publicationID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrFavoriteNotFound
		}

		return errors.Wrap(err, "failed to delete favorite")
	}

	return nil
}

// ListByUser pages through the user's favorites with their publications.
func (srv *favoriteService) ListByUser(ctx context.Context, userID uuid.UUID, page, size int) (*usecase.Page[*entity.FavoriteListing], error) {
	favorites, total, err := srv.favoriteRepo.PageByUser(ctx, userID, page, size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to page favorites by user")
	}

	return usecase.NewPage(favorites, total, page, size), nil
}
