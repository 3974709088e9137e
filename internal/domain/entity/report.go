package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReportStatus tracks the review state of a listing report.
type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "PENDING"
	ReportStatusResolved  ReportStatus = "RESOLVED"
	ReportStatusDismissed ReportStatus = "DISMISSED"
)

// Report is a user complaint about a publication, reviewed by an
// administrator.
type Report struct {
	ID                 uuid.UUID    `json:"id"`
	PublicationID      uuid.UUID    `json:"publicationId"`
	PublicationAddress string       `json:"publicationAddress"`
	ReporterID         uuid.UUID    `json:"reporterId"`
	ReporterName       string       `json:"reporterName"`
	Reason             string       `json:"reason"`
	Description        string       `json:"description"`
	Status             ReportStatus `json:"status"`
	AdminID            *uuid.UUID   `json:"adminId,omitempty"`
	AdminFeedback      string       `json:"adminFeedback,omitempty"`
	ReviewedAt         *time.Time   `json:"reviewedAt,omitempty"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}
