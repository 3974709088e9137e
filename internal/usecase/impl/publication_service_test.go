package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"inmomarket/internal/domain/entity"
	domainerrors "inmomarket/internal/domain/errors"
	"inmomarket/internal/domain/repository"
	"inmomarket/internal/domain/service"
	mockRepo "inmomarket/internal/mocks/repository"
	mockSvc "inmomarket/internal/mocks/service"
	"inmomarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type publicationServiceMocks struct {
	publicationRepo *mockRepo.MockPublicationRepository
	userRepo        *mockRepo.MockUserRepository
	cache           *mockSvc.MockPublicationCache
}

func newTestPublicationService(t *testing.T) (usecase.PublicationUsecase, *publicationServiceMocks) {
	t.Helper()

	mocks := &publicationServiceMocks{
		publicationRepo: mockRepo.NewMockPublicationRepository(t),
		userRepo:        mockRepo.NewMockUserRepository(t),
		cache:           mockSvc.NewMockPublicationCache(t),
	}
	svc := NewPublicationService(PublicationServiceParams{
		PublicationRepo: mocks.publicationRepo,
		UserRepo:        mocks.userRepo,
		Cache:           mocks.cache,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, mocks
}

func TestPublicationService_Create_InvalidatesHomeFeed(t *testing.T) {
	svc, mocks := newTestPublicationService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	mocks.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(&entity.User{ID: ownerID, Name: "Maria Lopez"}, nil)
	mocks.publicationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Publication")).
		Return(nil)
	mocks.cache.EXPECT().
		Invalidate(ctx).
		Return(nil)

	publication, err := svc.Create(ctx, ownerID, &usecase.CreatePublicationInput{
		Title:   "Apartment in San Benito",
		Address: "Calle La Reforma 123",
		Price:   950,
		AvailableTimes: []entity.AvailabilityWindow{
			{DayOfWeek: 1, StartTime: "09:00:00", EndTime: "17:00:00"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PublicationStatusActive, publication.Status)
	assert.Equal(t, "Maria Lopez", publication.OwnerName)
}

func TestPublicationService_Create_RejectsInvalidWindow(t *testing.T) {
	svc, _ := newTestPublicationService(t)

	_, err := svc.Create(context.Background(), uuid.New(), &usecase.CreatePublicationInput{
		Title: "Apartment in San Benito",
		AvailableTimes: []entity.AvailabilityWindow{
			{DayOfWeek: 8, StartTime: "09:00:00", EndTime: "17:00:00"},
		},
	})
	requireAppError(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.Create(context.Background(), uuid.New(), &usecase.CreatePublicationInput{
		Title: "Apartment in San Benito",
		AvailableTimes: []entity.AvailabilityWindow{
			{DayOfWeek: 1, StartTime: "17:00:00", EndTime: "09:00:00"},
		},
	})
	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestPublicationService_ListHome_CacheHitSkipsDatabase(t *testing.T) {
	svc, mocks := newTestPublicationService(t)
	ctx := context.Background()
	cached := []*entity.Publication{{ID: uuid.New(), Title: "Cached listing"}}

	mocks.cache.EXPECT().
		GetPage(ctx, 0, 10).
		Return(cached, int64(37), nil)

	page, err := svc.ListHome(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, cached, page.Content)
	assert.Equal(t, int64(37), page.TotalElements)
	assert.Equal(t, 4, page.TotalPages)
}

func TestPublicationService_ListHome_CacheMissFillsCache(t *testing.T) {
	svc, mocks := newTestPublicationService(t)
	ctx := context.Background()
	fresh := []*entity.Publication{{ID: uuid.New(), Title: "Fresh listing"}}

	mocks.cache.EXPECT().
		GetPage(ctx, 0, 10).
		Return(nil, int64(0), service.ErrCacheMiss)
	mocks.publicationRepo.EXPECT().
		PageActive(ctx, 0, 10).
		Return(fresh, int64(1), nil)
	mocks.cache.EXPECT().
		SetPage(ctx, 0, 10, fresh, int64(1)).
		Return(nil)

	page, err := svc.ListHome(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, fresh, page.Content)
}

func TestPublicationService_ListHome_BrokenCacheDegradesToDatabase(t *testing.T) {
	svc, mocks := newTestPublicationService(t)
	ctx := context.Background()
	fresh := []*entity.Publication{{ID: uuid.New()}}

	mocks.cache.EXPECT().
		GetPage(ctx, 0, 10).
		Return(nil, int64(0), assert.AnError)
	mocks.publicationRepo.EXPECT().
		PageActive(ctx, 0, 10).
		Return(fresh, int64(1), nil)
	mocks.cache.EXPECT().
		SetPage(ctx, 0, 10, fresh, int64(1)).
		Return(assert.AnError)

	page, err := svc.ListHome(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, fresh, page.Content)
}

func TestPublicationService_GetByID_NotFound(t *testing.T) {
	svc, mocks := newTestPublicationService(t)
	ctx := context.Background()
	id := uuid.New()

	mocks.publicationRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrPublicationNotFound)

	_, err := svc.GetByID(ctx, id)
	requireAppError(t, err, domainerrors.ErrPublicationNotFound)
}
