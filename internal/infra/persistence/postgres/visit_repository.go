package postgres

import (
	"context"
	"time"

	"inmomarket/internal/domain/entity"
	domainerrors "inmomarket/internal/domain/errors"
	"inmomarket/internal/domain/repository"
	"inmomarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// visitRepository implements the repository.VisitRepository interface.
type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository is the constructor for visitRepository.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{
		db: db,
	}
}

// Create persists a new visit request in PENDING state.
func (repo *visitRepository) Create(ctx context.Context, visit *entity.VisitRequest) error {
	visitM, err := fromVisitDomain(visit)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(visitM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVisitNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create visit request")
	}

	return nil
}

// FindByID retrieves a visit request by its unique ID.
func (repo *visitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VisitRequest, error) {
	var visitM model.VisitRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&visitM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVisitNotFound
		}

		return nil, errors.Wrap(err, "failed to find visit request by ID")
	}

	return toVisitDomain(&visitM), nil
}

// PageByVisitor retrieves a page of the visits a user requested, newest first.
func (repo *visitRepository) PageByVisitor(ctx context.Context, visitorID uuid.UUID, page, size int) ([]*entity.VisitRequest, int64, error) {
	return repo.pageVisits(ctx, "visitor_id = ?", visitorID, page, size)
}

// PageByOwner retrieves a page of the visits requested on a user's
// publications, newest first.
func (repo *visitRepository) PageByOwner(ctx context.Context, ownerID uuid.UUID, page, size int) ([]*entity.VisitRequest, int64, error) {
	return repo.pageVisits(ctx, "owner_id = ?", ownerID, page, size)
}

func (repo *visitRepository) pageVisits(ctx context.Context, cond string, userID uuid.UUID, page, size int) ([]*entity.VisitRequest, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.VisitRequestModel{}).
		Where(cond, userID).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count visit requests")
	}

	var visitModels []*model.VisitRequestModel
	if err := repo.db.WithContext(ctx).
		Where(cond, userID).
		Order("created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&visitModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to page visit requests")
	}

	return toVisitDomainSlice(visitModels), total, nil
}

// UpdateTransition persists the mutated visit record guarded by a
// compare-and-swap on the status column.
func (repo *visitRepository) UpdateTransition(ctx context.Context, visit *entity.VisitRequest, from entity.VisitStatus) error {
	visitM, err := fromVisitDomain(visit)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.VisitRequestModel{}).
		Where("id = ? AND status = ?", visit.ID, string(from)).
		Updates(map[string]any{
			"status":           visitM.Status,
			"meeting_location": visitM.MeetingLocation,
			"owner_response":   visitM.OwnerResponse,
			"rejection_reason": visitM.RejectionReason,
			"response_date":    visitM.ResponseDate,
			"visitor_read":     visitM.VisitorRead,
			"updated_at":       visitM.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update visit request")
	}

	// Zero rows means the guard failed: either the record is gone or
	// another actor transitioned it first.
	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.VisitRequestModel{}).
			Where("id = ?", visit.ID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to recheck visit request")
		}
		if count == 0 {
			return repository.ErrVisitNotFound
		}

		return repository.ErrVisitConflict
	}

	return nil
}

// FindPendingByOwner retrieves every PENDING request addressed to the
// user as publication owner, newest first.
func (repo *visitRepository) FindPendingByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.VisitRequest, error) {
	var visitModels []*model.VisitRequestModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND status = ?", ownerID, string(entity.VisitStatusPending)).
		Order("created_at DESC").
		Find(&visitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending visits by owner")
	}

	return toVisitDomainSlice(visitModels), nil
}

// FindRespondedByVisitor retrieves every non-PENDING request made by
// the user, most recently responded first.
func (repo *visitRepository) FindRespondedByVisitor(ctx context.Context, visitorID uuid.UUID) ([]*entity.VisitRequest, error) {
	var visitModels []*model.VisitRequestModel

	if err := repo.db.WithContext(ctx).
		Where("visitor_id = ? AND status <> ?", visitorID, string(entity.VisitStatusPending)).
		Order("updated_at DESC").
		Find(&visitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find responded visits by visitor")
	}

	return toVisitDomainSlice(visitModels), nil
}

// CountUnreadRequests counts PENDING requests the owner has not seen.
func (repo *visitRepository) CountUnreadRequests(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VisitRequestModel{}).
		Where("owner_id = ? AND status = ? AND owner_read = false", ownerID, string(entity.VisitStatusPending)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread requests")
	}

	return count, nil
}

// CountUnreadResponses counts responded requests the visitor has not seen.
func (repo *visitRepository) CountUnreadResponses(ctx context.Context, visitorID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VisitRequestModel{}).
		Where("visitor_id = ? AND status <> ? AND visitor_read = false", visitorID, string(entity.VisitStatusPending)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread responses")
	}

	return count, nil
}

// MarkRequestsRead flags every pending request addressed to the owner as read.
func (repo *visitRepository) MarkRequestsRead(ctx context.Context, ownerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.VisitRequestModel{}).
		Where("owner_id = ? AND status = ? AND owner_read = false", ownerID, string(entity.VisitStatusPending)).
		Update("owner_read", true).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark requests read")
	}

	return nil
}

// MarkResponsesRead flags every responded request of the visitor as read.
func (repo *visitRepository) MarkResponsesRead(ctx context.Context, visitorID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.VisitRequestModel{}).
		Where("visitor_id = ? AND status <> ? AND visitor_read = false", visitorID, string(entity.VisitStatusPending)).
		Update("visitor_read", true).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark responses read")
	}

	return nil
}

// FindElapsedAccepted retrieves up to limit ACCEPTED visits whose
// scheduled moment lies before the given instant.
func (repo *visitRepository) FindElapsedAccepted(ctx context.Context, before time.Time, limit int) ([]*entity.VisitRequest, error) {
	var visitModels []*model.VisitRequestModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND visit_at < ?", string(entity.VisitStatusAccepted), before).
		Order("visit_at ASC").
		Limit(limit).
		Find(&visitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find elapsed accepted visits")
	}

	return toVisitDomainSlice(visitModels), nil
}

// --- Converters ---

func toVisitDomain(data *model.VisitRequestModel) *entity.VisitRequest {
	return &entity.VisitRequest{
		ID:                 data.ID,
		PublicationID:      data.PublicationID,
		PublicationTitle:   data.PublicationTitle,
		PublicationAddress: data.PublicationAddress,
		VisitorID:          data.VisitorID,
		VisitorName:        data.VisitorName,
		VisitorEmail:       data.VisitorEmail,
		OwnerID:            data.OwnerID,
		OwnerName:          data.OwnerName,
		VisitDate:          data.VisitDate,
		VisitTime:          data.VisitTime,
		UserMessage:        data.UserMessage,
		Status:             entity.VisitStatus(data.Status),
		MeetingLocation:    data.MeetingLocation,
		OwnerResponse:      data.OwnerResponse,
		RejectionReason:    data.RejectionReason,
		ResponseDate:       data.ResponseDate,
		OwnerRead:          data.OwnerRead,
		VisitorRead:        data.VisitorRead,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func toVisitDomainSlice(data []*model.VisitRequestModel) []*entity.VisitRequest {
	visits := make([]*entity.VisitRequest, 0, len(data))
	for _, visitM := range data {
		visits = append(visits, toVisitDomain(visitM))
	}

	return visits
}

func fromVisitDomain(data *entity.VisitRequest) (*model.VisitRequestModel, error) {
	visitAt, err := data.VisitAt(time.UTC)
	if err != nil {
		return nil, errors.Wrap(err, "invalid visit date or time")
	}

	return &model.VisitRequestModel{
		ID:                 data.ID,
		PublicationID:      data.PublicationID,
		PublicationTitle:   data.PublicationTitle,
		PublicationAddress: data.PublicationAddress,
		VisitorID:          data.VisitorID,
		VisitorName:        data.VisitorName,
		VisitorEmail:       data.VisitorEmail,
		OwnerID:            data.OwnerID,
		OwnerName:          data.OwnerName,
		VisitDate:          data.VisitDate,
		VisitTime:          data.VisitTime,
		VisitAt:            visitAt,
		UserMessage:        data.UserMessage,
		Status:             string(data.Status),
		MeetingLocation:    data.MeetingLocation,
		OwnerResponse:      data.OwnerResponse,
		RejectionReason:    data.RejectionReason,
		ResponseDate:       data.ResponseDate,
		OwnerRead:          data.OwnerRead,
		VisitorRead:        data.VisitorRead,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}, nil
}
