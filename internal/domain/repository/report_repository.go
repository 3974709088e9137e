package repository

import (
	"context"

	"inmomarket/internal/domain/entity"
	"inmomarket/internal/errors"

	"github.com/google/uuid"
)

// ErrReportNotFound is returned when a report is not found.
var ErrReportNotFound = errors.New("report not found")

// ReportRepository defines the interface for report database operations.
type ReportRepository interface {
	// Create persists a new report in PENDING state.
	Create(ctx context.Context, report *entity.Report) error

	// FindByID retrieves a report by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error)

	// PageAll retrieves a page of all reports for the admin console,
	// pending first and newest first within a status, with the total
	// record count.
	PageAll(ctx context.Context, page, size int) ([]*entity.Report, int64, error)

	// Update persists the reviewed report.
	Update(ctx context.Context, report *entity.Report) error
}
