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

// reportRepository implements the repository.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// Create persists a new report in PENDING state.
func (repo *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	reportM := fromReportDomain(report)

	if err := repo.db.WithContext(ctx).Create(reportM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrReportNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create report")
	}

	return nil
}

// FindByID retrieves a report by its unique ID.
func (repo *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	var reportM model.ReportModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reportM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to find report by ID")
	}

	return toReportDomain(&reportM), nil
}

// PageAll retrieves a page of all reports for the admin console,
// pending first and newest first within a status.
func (repo *reportRepository) PageAll(ctx context.Context, page, size int) ([]*entity.Report, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ReportModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count reports")
	}

	var reportModels []*model.ReportModel
	if err := repo.db.WithContext(ctx).
		Order("CASE status WHEN 'PENDING' THEN 0 ELSE 1 END, created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&reportModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to page reports")
	}

	reports := make([]*entity.Report, 0, len(reportModels))
	for _, reportM := range reportModels {
		reports = append(reports, toReportDomain(reportM))
	}

	return reports, total, nil
}

// Update persists the reviewed report.
func (repo *reportRepository) Update(ctx context.Context, report *entity.Report) error {
	reportM := fromReportDomain(report)

	result := repo.db.WithContext(ctx).
		Model(&model.ReportModel{}).
		Where("id = ?", report.ID).
		Updates(map[string]any{
			"status":         reportM.Status,
			"admin_feedback": reportM.AdminFeedback,
			"admin_id":       reportM.AdminID,
			"reviewed_at":    reportM.ReviewedAt,
			"updated_at":     reportM.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update report")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReportNotFound
	}

	return nil
}

// --- Converters ---

func toReportDomain(data *model.ReportModel) *entity.Report {
	return &entity.Report{
		ID:                 data.ID,
		PublicationID:      data.PublicationID,
		PublicationAddress: data.PublicationAddress,
		ReporterID:         data.ReporterID,
		ReporterName:       data.ReporterName,
		Reason:             data.Reason,
		Description:        data.Description,
		Status:             entity.ReportStatus(data.Status),
		AdminFeedback:      data.AdminFeedback,
		AdminID:            data.AdminID,
		ReviewedAt:         data.ReviewedAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromReportDomain(data *entity.Report) *model.ReportModel {
	return &model.ReportModel{
		ID:                 data.ID,
		PublicationID:      data.PublicationID,
		PublicationAddress: data.PublicationAddress,
		ReporterID:         data.ReporterID,
		ReporterName:       data.ReporterName,
		Reason:             data.Reason,
		Description:        data.Description,
		Status:             string(data.Status),
		AdminFeedback:      data.AdminFeedback,
		AdminID:            data.AdminID,
		ReviewedAt:         data.ReviewedAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
