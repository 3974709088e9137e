package model

import (
	"time"

	"github.com/google/uuid"
)

// ReportModel mirrors the 'reports' table.
type ReportModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	PublicationID      uuid.UUID `gorm:"type:uuid;not null;index"`
	PublicationAddress string    `gorm:"type:varchar(255);not null"`
	ReporterID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ReporterName       string    `gorm:"type:varchar(100);not null"`
	Reason             string    `gorm:"type:varchar(100);not null"`
	Description   string     `gorm:"type:text"`
	Status        string     `gorm:"type:varchar(20);not null;index"`
	AdminFeedback string     `gorm:"type:text"`
	AdminID       *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReportModel) TableName() string {
	return "reports"
}
