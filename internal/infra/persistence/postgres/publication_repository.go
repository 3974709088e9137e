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

// publicationRepository implements the repository.PublicationRepository interface.
type publicationRepository struct {
	db *gorm.DB
}

// NewPublicationRepository is the constructor for publicationRepository.
func NewPublicationRepository(db *gorm.DB) repository.PublicationRepository {
	return &publicationRepository{
		db: db,
	}
}

// Create persists a new publication with its availability windows.
func (repo *publicationRepository) Create(ctx context.Context, publication *entity.Publication) error {
	publicationM := fromPublicationDomain(publication)

	// The windows are written through the association in one statement
	// batch, they never exist without their publication.
	if err := repo.db.WithContext(ctx).Create(publicationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create publication")
	}

	return nil
}

// FindByID retrieves a publication by its unique ID, including its
// availability windows.
func (repo *publicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Publication, error) {
	var publicationM model.PublicationModel

	if err := repo.db.WithContext(ctx).
		Preload("AvailableTimes").
		Where("id = ?", id).
		First(&publicationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPublicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find publication by ID")
	}

	return toPublicationDomain(&publicationM), nil
}

// PageActive retrieves a page of active publications for the home feed.
func (repo *publicationRepository) PageActive(ctx context.Context, page, size int) ([]*entity.Publication, int64, error) {
	return repo.pagePublications(ctx, "status = ?", string(entity.PublicationStatusActive), page, size)
}

// PageByOwner retrieves a page of the user's own publications.
func (repo *publicationRepository) PageByOwner(ctx context.Context, ownerID uuid.UUID, page, size int) ([]*entity.Publication, int64, error) {
	return repo.pagePublications(ctx, "owner_id = ?", ownerID, page, size)
}

func (repo *publicationRepository) pagePublications(ctx context.Context, cond string, arg any, page, size int) ([]*entity.Publication, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PublicationModel{}).
		Where(cond, arg).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count publications")
	}

	var publicationModels []*model.PublicationModel
	if err := repo.db.WithContext(ctx).
		Preload("AvailableTimes").
		Where(cond, arg).
		Order("created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&publicationModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to page publications")
	}

	publications := make([]*entity.Publication, 0, len(publicationModels))
	for _, publicationM := range publicationModels {
		publications = append(publications, toPublicationDomain(publicationM))
	}

	return publications, total, nil
}

// UpdateStatus changes the moderation status of a publication.
func (repo *publicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PublicationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PublicationModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update publication status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPublicationNotFound
	}

	return nil
}

// --- Converters ---

func toPublicationDomain(data *model.PublicationModel) *entity.Publication {
	windows := make([]entity.AvailabilityWindow, 0, len(data.AvailableTimes))
	for _, windowM := range data.AvailableTimes {
		windows = append(windows, entity.AvailabilityWindow{
			DayOfWeek: windowM.DayOfWeek,
			StartTime: windowM.StartTime,
			EndTime:   windowM.EndTime,
		})
	}

	return &entity.Publication{
		ID:             data.ID,
		OwnerID:        data.OwnerID,
		OwnerName:      data.OwnerName,
		Title:          data.Title,
		Description:    data.Description,
		Address:        data.Address,
		Neighborhood:   data.Neighborhood,
		Municipality:   data.Municipality,
		Department:     data.Department,
		Price:          data.Price,
		Bedrooms:       data.Bedrooms,
		Floors:         data.Floors,
		Size:           data.Size,
		Parking:        data.Parking,
		Furnished:      data.Furnished,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		ImageURLs:      data.ImageURLs,
		AvailableTimes: windows,
		Status:         entity.PublicationStatus(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromPublicationDomain(data *entity.Publication) *model.PublicationModel {
	windows := make([]model.AvailabilityWindowModel, 0, len(data.AvailableTimes))
	for _, window := range data.AvailableTimes {
		windows = append(windows, model.AvailabilityWindowModel{
			PublicationID: data.ID,
			DayOfWeek:     window.DayOfWeek,
			StartTime:     window.StartTime,
			EndTime:       window.EndTime,
		})
	}

	return &model.PublicationModel{
		ID:             data.ID,
		OwnerID:        data.OwnerID,
		OwnerName:      data.OwnerName,
		Title:          data.Title,
		Description:    data.Description,
		Address:        data.Address,
		Neighborhood:   data.Neighborhood,
		Municipality:   data.Municipality,
		Department:     data.Department,
		Price:          data.Price,
		Bedrooms:       data.Bedrooms,
		Floors:         data.Floors,
		Size:           data.Size,
		Parking:        data.Parking,
		Furnished:      data.Furnished,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		ImageURLs:      data.ImageURLs,
		Status:         string(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		AvailableTimes: windows,
	}
}
