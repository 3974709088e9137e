package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "inmomarket/internal/delivery/context"
	"inmomarket/internal/domain/entity"
	domainerrors "inmomarket/internal/domain/errors"
	"inmomarket/internal/domain/repository"
	"inmomarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	reportRepo      repository.ReportRepository
	publicationRepo repository.PublicationRepository
	userRepo        repository.UserRepository
	logger          *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService.
type ReportServiceParams struct {
	fx.In

	ReportRepo      repository.ReportRepository
	PublicationRepo repository.PublicationRepository
	UserRepo        repository.UserRepository
	Logger          *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		reportRepo:      params.ReportRepo,
		publicationRepo: params.PublicationRepo,
		userRepo:        params.UserRepo,
		logger:          params.Logger,
	}
}

// Submit files a new report against a publication.
func (srv *reportService) Submit(ctx context.Context, reporterID uuid.UUID, input *usecase.SubmitReportInput) (*entity.Report, error) {
	if input.Reason == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a report reason is required")
	}

	publication, err := srv.publicationRepo.FindByID(ctx, input.PublicationID)
	if err != nil {
		if errors.Is(err, repository.ErrPublicationNotFound) {
			return nil, domainerrors.ErrPublicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find reported publication")
	}

	reporter, err := srv.userRepo.FindByID(ctx, reporterID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find reporter")
	}

	now := time.Now()
	report := &entity.Report{
		ID:                 uuid.New(),
		PublicationID:      publication.ID,
		PublicationAddress: publication.Address,
		ReporterID:         reporter.ID,
		ReporterName:       reporter.Name,
		Reason:             input.Reason,
		Description:        input.Description,
		Status:             entity.ReportStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := srv.reportRepo.Create(ctx, report); err != nil {
		return nil, errors.Wrap(err, "failed to create report")
	}

	return report, nil
}

// ListAll pages through every report for the admin console.
func (srv *reportService) ListAll(ctx context.Context, page, size int) (*usecase.Page[*entity.Report], error) {
	reports, total, err := srv.reportRepo.PageAll(ctx, page, size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to page reports")
	}

	return usecase.NewPage(reports, total, page, size), nil
}

// Resolve records an administrator's decision on a pending report. A
// RESOLVED outcome also takes the offending publication off the market.
func (srv *reportService) Resolve(ctx context.Context, adminID, reportID uuid.UUID, input *usecase.ResolveReportInput) (*entity.Report, error) {
	if input.Status != entity.ReportStatusResolved && input.Status != entity.ReportStatusDismissed {
		return nil, domainerrors.ErrValidationFailed.WithDetails("review outcome must be RESOLVED or DISMISSED")
	}

	report, err := srv.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, domainerrors.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to find report")
	}

	if report.Status != entity.ReportStatusPending {
		return nil, domainerrors.ErrReportAlreadyReviewed
	}

	now := time.Now()
	report.Status = input.Status
	report.AdminFeedback = input.AdminFeedback
	report.AdminID = &adminID
	report.ReviewedAt = &now
	report.UpdatedAt = now

	if err := srv.reportRepo.Update(ctx, report); err != nil {
		return nil, errors.Wrap(err, "failed to update report")
	}

	if report.Status == entity.ReportStatusResolved {
		if err := srv.publicationRepo.UpdateStatus(ctx, report.PublicationID, entity.PublicationStatusRemoved); err != nil {
			// The review verdict stands even if the takedown needs a retry.
			deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to remove reported publication",
				slog.Any("publicationID", report.PublicationID),
				slog.Any("error", err),
			)
		}
	}

	return report, nil
}
