package model

import (
	"time"

	"github.com/google/uuid"
)

// PublicationModel mirrors the 'publications' table.
type PublicationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerName    string    `gorm:"type:varchar(100);not null"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	Address      string    `gorm:"type:varchar(255);not null"`
	Neighborhood string    `gorm:"type:varchar(100)"`
	Municipality string    `gorm:"type:varchar(100)"`
	Department   string    `gorm:"type:varchar(100)"`
	Price        int64     `gorm:"not null"`
	Bedrooms     int
	Floors       int
	Size         float64
	Parking      bool
	Furnished    bool
	Latitude     float64
	Longitude    float64
	ImageURLs    []string `gorm:"serializer:json;type:jsonb"`
	Status       string   `gorm:"type:varchar(20);not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	AvailableTimes []AvailabilityWindowModel `gorm:"foreignKey:PublicationID"`
}

// TableName explicitly sets the table name for GORM.
func (PublicationModel) TableName() string {
	return "publications"
}

// AvailabilityWindowModel mirrors the 'availability_windows' table, one
// row per recurring weekly slot of a publication.
type AvailabilityWindowModel struct {
	ID            int64     `gorm:"primary_key;autoIncrement"`
	PublicationID uuid.UUID `gorm:"type:uuid;not null;index"`
	DayOfWeek     int       `gorm:"not null"`
	StartTime     string    `gorm:"type:time;not null"`
	EndTime       string    `gorm:"type:time;not null"`
}

// TableName explicitly sets the table name for GORM.
func (AvailabilityWindowModel) TableName() string {
	return "availability_windows"
}
