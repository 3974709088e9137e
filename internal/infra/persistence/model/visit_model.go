package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitRequestModel mirrors the 'visit_requests' table. The visit_at
// column stores the combined date and time so the completion sweep can
// range-scan elapsed ACCEPTED rows with one indexed comparison.
type VisitRequestModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	PublicationID      uuid.UUID `gorm:"type:uuid;not null;index"`
	PublicationTitle   string    `gorm:"type:varchar(255);not null"`
	PublicationAddress string    `gorm:"type:varchar(255);not null"`
	VisitorID          uuid.UUID `gorm:"type:uuid;not null;index"`
	VisitorName        string    `gorm:"type:varchar(100);not null"`
	VisitorEmail       string    `gorm:"type:varchar(255);not null"`
	OwnerID            uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerName          string    `gorm:"type:varchar(100);not null"`
	VisitDate          string    `gorm:"type:date;not null"`
	VisitTime          string    `gorm:"type:time;not null"`
	VisitAt            time.Time `gorm:"not null;index:idx_visit_requests_status_visit_at"`
	UserMessage        string    `gorm:"type:text"`
	Status             string    `gorm:"type:varchar(20);not null;index:idx_visit_requests_status_visit_at"`
	MeetingLocation    string    `gorm:"type:varchar(255)"`
	OwnerResponse      string    `gorm:"type:text"`
	RejectionReason    string    `gorm:"type:text"`
	ResponseDate       *time.Time
	OwnerRead          bool `gorm:"not null;default:false"`
	VisitorRead        bool `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (VisitRequestModel) TableName() string {
	return "visit_requests"
}
