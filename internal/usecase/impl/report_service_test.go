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

type reportServiceMocks struct {
	reportRepo      *mockRepo.MockReportRepository
	publicationRepo *mockRepo.MockPublicationRepository
	userRepo        *mockRepo.MockUserRepository
}

func newTestReportService(t *testing.T) (usecase.ReportUsecase, *reportServiceMocks) {
	t.Helper()

	mocks := &reportServiceMocks{
		reportRepo:      mockRepo.NewMockReportRepository(t),
		publicationRepo: mockRepo.NewMockPublicationRepository(t),
		userRepo:        mockRepo.NewMockUserRepository(t),
	}
	svc := NewReportService(ReportServiceParams{
		ReportRepo:      mocks.reportRepo,
		PublicationRepo: mocks.publicationRepo,
		UserRepo:        mocks.userRepo,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, mocks
}

func TestReportService_Submit_DenormalizesContext(t *testing.T) {
	svc, mocks := newTestReportService(t)
	ctx := context.Background()
	reporterID := uuid.New()
	publication := &entity.Publication{ID: uuid.New(), Address: "Calle La Reforma 123"}

	mocks.publicationRepo.EXPECT().
		FindByID(ctx, publication.ID).
		Return(publication, nil)
	mocks.userRepo.EXPECT().
		FindByID(ctx, reporterID).
		Return(&entity.User{ID: reporterID, Name: "Carlos Mejia"}, nil)
	mocks.reportRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Report")).
		Return(nil)

	report, err := svc.Submit(ctx, reporterID, &usecase.SubmitReportInput{
		PublicationID: publication.ID,
		Reason:        "misleading photos",
		Description:   "The photos show a different property.",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReportStatusPending, report.Status)
	assert.Equal(t, "Calle La Reforma 123", report.PublicationAddress)
	assert.Equal(t, "Carlos Mejia", report.ReporterName)
}

func TestReportService_Submit_MissingReason(t *testing.T) {
	svc, _ := newTestReportService(t)

	_, err := svc.Submit(context.Background(), uuid.New(), &usecase.SubmitReportInput{
		PublicationID: uuid.New(),
	})
	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestReportService_Resolve_RemovesPublication(t *testing.T) {
	svc, mocks := newTestReportService(t)
	ctx := context.Background()
	adminID := uuid.New()
	report := &entity.Report{
		ID:            uuid.New(),
		PublicationID: uuid.New(),
		Status:        entity.ReportStatusPending,
	}

	mocks.reportRepo.EXPECT().
		FindByID(ctx, report.ID).
		Return(report, nil)
	mocks.reportRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Report")).
		Return(nil)
	mocks.publicationRepo.EXPECT().
		UpdateStatus(ctx, report.PublicationID, entity.PublicationStatusRemoved).
		Return(nil)

	resolved, err := svc.Resolve(ctx, adminID, report.ID, &usecase.ResolveReportInput{
		Status:        entity.ReportStatusResolved,
		AdminFeedback: "Listing removed.",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReportStatusResolved, resolved.Status)
	require.NotNil(t, resolved.AdminID)
	assert.Equal(t, adminID, *resolved.AdminID)
	assert.NotNil(t, resolved.ReviewedAt)
}

func TestReportService_Resolve_DismissKeepsPublication(t *testing.T) {
	svc, mocks := newTestReportService(t)
	ctx := context.Background()
	report := &entity.Report{
		ID:            uuid.New(),
		PublicationID: uuid.New(),
		Status:        entity.ReportStatusPending,
	}

	mocks.reportRepo.EXPECT().
		FindByID(ctx, report.ID).
		Return(report, nil)
	mocks.reportRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Report")).
		Return(nil)

	resolved, err := svc.Resolve(ctx, uuid.New(), report.ID, &usecase.ResolveReportInput{
		Status: entity.ReportStatusDismissed,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReportStatusDismissed, resolved.Status)
}

func TestReportService_Resolve_InvalidOutcome(t *testing.T) {
	svc, _ := newTestReportService(t)

	_, err := svc.Resolve(context.Background(), uuid.New(), uuid.New(), &usecase.ResolveReportInput{
		Status: entity.ReportStatusPending,
	})
	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestReportService_Resolve_AlreadyReviewed(t *testing.T) {
	svc, mocks := newTestReportService(t)
	ctx := context.Background()
	report := &entity.Report{
		ID:     uuid.New(),
		Status: entity.ReportStatusDismissed,
	}

	mocks.reportRepo.EXPECT().
		FindByID(ctx, report.ID).
		Return(report, nil)

	_, err := svc.Resolve(ctx, uuid.New(), report.ID, &usecase.ResolveReportInput{
		Status: entity.ReportStatusResolved,
	})
	requireAppError(t, err, domainerrors.ErrReportAlreadyReviewed)
}

func TestReportService_Resolve_NotFound(t *testing.T) {
	svc, mocks := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()

	mocks.reportRepo.EXPECT().
		FindByID(ctx, reportID).
		Return(nil, repository.ErrReportNotFound)

	_, err := svc.Resolve(ctx, uuid.New(), reportID, &usecase.ResolveReportInput{
		Status: entity.ReportStatusResolved,
	})
	requireAppError(t, err, domainerrors.ErrReportNotFound)
}
