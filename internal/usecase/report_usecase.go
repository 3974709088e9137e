package usecase

import (
	"context"

	"inmomarket/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitReportInput defines the data required to report a listing.
type SubmitReportInput struct {
	PublicationID uuid.UUID
	Reason        string
	Description   string
}

// ResolveReportInput defines an administrator's review outcome.
type ResolveReportInput struct {
	Status        entity.ReportStatus // RESOLVED or DISMISSED
	AdminFeedback string
}

// ReportUsecase manages listing reports and their administrative review.
type ReportUsecase interface {
	// Submit files a new report against a publication.
	Submit(ctx context.Context, reporterID uuid.UUID, input *SubmitReportInput) (*entity.Report, error)

	// ListAll pages through every report for the admin console.
	ListAll(ctx context.Context, page, size int) (*Page[*entity.Report], error)

	// Resolve records an administrator's decision on a pending report.
	// Resolving a report as RESOLVED removes the offending publication.
	Resolve(ctx context.Context, adminID, reportID uuid.UUID, input *ResolveReportInput) (*entity.Report, error)
}
