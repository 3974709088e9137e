package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "inmomarket/internal/delivery/context"
	"inmomarket/internal/domain/entity"
	domainerrors "inmomarket/internal/domain/errors"
	"inmomarket/internal/domain/repository"
	"inmomarket/internal/domain/service"
	"inmomarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// publicationService implements the PublicationUsecase interface.
type publicationService struct {
	publicationRepo repository.PublicationRepository
	userRepo        repository.UserRepository
	cache           service.PublicationCache
	logger          *slog.Logger
}

// PublicationServiceParams holds dependencies for PublicationService.
type PublicationServiceParams struct {
	fx.In

	PublicationRepo repository.PublicationRepository
	UserRepo        repository.UserRepository
	Cache           service.PublicationCache `optional:"true"`
	Logger          *slog.Logger
}

// NewPublicationService is the constructor for publicationService.
func NewPublicationService(params PublicationServiceParams) usecase.PublicationUsecase {
	return &publicationService{
		publicationRepo: params.PublicationRepo,
		userRepo:        params.UserRepo,
		cache:           params.Cache,
		logger:          params.Logger,
	}
}

// Create publishes a new listing owned by the given user.
func (srv *publicationService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreatePublicationInput) (*entity.Publication, error) {
	if err := validateWindows(input.AvailableTimes); err != nil {
		return nil, err
	}

	owner, err := srv.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner for publication")
	}

	now := time.Now()
	publication := &entity.Publication{
		ID:             uuid.New(),
		OwnerID:        owner.ID,
		OwnerName:      owner.Name,
		Title:          input.Title,
		Description:    input.Description,
		Address:        input.Address,
		Neighborhood:   input.Neighborhood,
		Municipality:   input.Municipality,
		Department:     input.Department,
		Price:          input.Price,
		Bedrooms:       input.Bedrooms,
		Floors:         input.Floors,
		Size:           input.Size,
		Parking:        input.Parking,
		Furnished:      input.Furnished,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		ImageURLs:      input.ImageURLs,
		AvailableTimes: input.AvailableTimes,
		Status:         entity.PublicationStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := srv.publicationRepo.Create(ctx, publication); err != nil {
		return nil, errors.Wrap(err, "failed to create publication")
	}

	srv.invalidateHomeFeed(ctx)
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Publication created",
		slog.Any("publicationID", publication.ID),
	)

	return publication, nil
}

// GetByID retrieves a single listing with its availability windows.
func (srv *publicationService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Publication, error) {
	publication, err := srv.publicationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPublicationNotFound) {
			return nil, domainerrors.ErrPublicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find publication")
	}

	return publication, nil
}

// ListHome pages through active listings for the public home feed.
// A fresh cached page short-circuits the database entirely.
func (srv *publicationService) ListHome(ctx context.Context, page, size int) (*usecase.Page[*entity.Publication], error) {
	if srv.cache != nil {
		cached, total, err := srv.cache.GetPage(ctx, page, size)
		if err == nil {
			return usecase.NewPage(cached, total, page, size), nil
		}
		if !errors.Is(err, service.ErrCacheMiss) {
			// A broken cache degrades to the database, never to an error.
			deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Home feed cache read failed",
				slog.Any("error", err),
			)
		}
	}

	publications, total, err := srv.publicationRepo.PageActive(ctx, page, size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to page active publications")
	}

	result := usecase.NewPage(publications, total, page, size)

	if srv.cache != nil {
		if err := srv.cache.SetPage(ctx, page, size, publications, total); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Home feed cache write failed",
				slog.Any("error", err),
			)
		}
	}

	return result, nil
}

// ListByOwner pages through the user's own listings.
func (srv *publicationService) ListByOwner(ctx context.Context, ownerID uuid.UUID, page, size int) (*usecase.Page[*entity.Publication], error) {
	publications, total, err := srv.publicationRepo.PageByOwner(ctx, ownerID, page, size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to page publications by owner")
	}

	return usecase.NewPage(publications, total, page, size), nil
}

func (srv *publicationService) invalidateHomeFeed(ctx context.Context) {
	if srv.cache == nil {
		return
	}
	if err := srv.cache.Invalidate(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Home feed cache invalidation failed",
			slog.Any("error", err),
		)
	}
}

// validateWindows rejects malformed availability windows up front so a
// listing never carries a window no visit can ever match.
func validateWindows(windows []entity.AvailabilityWindow) error {
	for _, w := range windows {
		if w.DayOfWeek < 1 || w.DayOfWeek > 7 {
			return domainerrors.ErrValidationFailed.WithDetails("dayOfWeek must be between 1 (Monday) and 7 (Sunday)")
		}
		if w.StartTime >= w.EndTime {
			return domainerrors.ErrValidationFailed.WithDetails("availability window start must precede its end")
		}
	}

	return nil
}
