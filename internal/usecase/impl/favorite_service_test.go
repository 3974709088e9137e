package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"inmomarket/internal/domain/entity"
	domainerrors "inmomarket/internal/domain/errors"
	"inmomarket/internal/domain/repository"
	mockRepo "inmomarket/internal/mocks/repository"
	"inmomarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteServiceMocks struct {
	favoriteRepo    *mockRepo.MockFavoriteRepository
	publicationRepo *mockRepo.MockPublicationRepository
}

func newTestFavoriteService(t *testing.T) (usecase.FavoriteUsecase, *favoriteServiceMocks) {
	t.Helper()

	mocks := &favoriteServiceMocks{
		favoriteRepo:    mockRepo.NewMockFavoriteRepository(t),
		publicationRepo: mockRepo.NewMockPublicationRepository(t),
	}
	svc := NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo:    mocks.favoriteRepo,
		PublicationRepo: mocks.publicationRepo,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, mocks
}

func TestFavoriteService_Add_SavesFavorite(t *testing.T) {
	svc, mocks := newTestFavoriteService(t)
	ctx := context.Background()
	userID := uuid.New()
	publicationID := uuid.New()

	mocks.publicationRepo.EXPECT().
		FindByID(ctx, publicationID).
		Return(&entity.Publication{ID: publicationID}, nil)
	mocks.favoriteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Favorite")).
		Return(nil)

	favorite, err := svc.Add(ctx, userID, publicationID)
	require.NoError(t, err)
	assert.Equal(t, userID, favorite.UserID)
	assert.Equal(t, publicationID, favorite.PublicationID)
}

func TestFavoriteService_Add_PublicationGone(t *testing.T) {
	svc, mocks := newTestFavoriteService(t)
	ctx := context.Background()
	publicationID := uuid.New()

	mocks.publicationRepo.EXPECT().
		FindByID(ctx, publicationID).
		Return(nil, repository.ErrPublicationNotFound)

	_, err := svc.Add(ctx, uuid.New(), publicationID)
	requireAppError(t, err, domainerrors.ErrPublicationNotFound)
}

func TestFavoriteService_Add_AlreadySaved(t *testing.T) {
	svc, mocks := newTestFavoriteService(t)
	ctx := context.Background()
	publicationID := uuid.New()

	mocks.publicationRepo.EXPECT().
		FindByID(ctx, publicationID).
		Return(&entity.Publication{ID: publicationID}, nil)
	mocks.favoriteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Favorite")).
		Return(repository.ErrDuplicateFavorite)

	_, err := svc.Add(ctx, uuid.New(), publicationID)
	requireAppError(t, err, domainerrors.ErrFavoriteAlreadyExists)
}

func TestFavoriteService_Remove_NotFound(t *testing.T) {
	svc, mocks := newTestFavoriteService(t)
	ctx := context.Background()
	userID := uuid.New()
	publicationID := uuid.New()

	mocks.favoriteRepo.EXPECT().
		Delete(ctx, userID, publicationID).
		Return(repository.ErrFavoriteNotFound)

	err := svc.Remove(ctx, userID, publicationID)
	requireAppError(t, err, domainerrors.ErrFavoriteNotFound)
}

func TestFavoriteService_ListByUser_BuildsPage(t *testing.T) {
	svc, mocks := newTestFavoriteService(t)
	ctx := context.Background()
	userID := uuid.New()
	listings := []*entity.FavoriteListing{
		{Favorite: entity.Favorite{UserID: userID}, Publication: &entity.Publication{Title: "Saved one"}},
	}

	mocks.favoriteRepo.EXPECT().
		PageByUser(ctx, userID, 0, 10).
		Return(listings, int64(1), nil)

	page, err := svc.ListByUser(ctx, userID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, listings, page.Content)
	assert.Equal(t, 1, page.TotalPages)
}
