package entity

import (
	"time"

	"github.com/google/uuid"
)

// PublicationStatus tracks the moderation state of a listing.
type PublicationStatus string

const (
	PublicationStatusActive  PublicationStatus = "ACTIVE"
	PublicationStatusRemoved PublicationStatus = "REMOVED"
)

// AvailabilityWindow is a recurring weekly time range during which a
// publication accepts visit requests. DayOfWeek is ISO 8601 numbering:
// 1 is Monday, 7 is Sunday. StartTime and EndTime are times of day in
// "15:04:05" format with seconds precision.
type AvailabilityWindow struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Publication represents a property listing published by an owner.
type Publication struct {
	ID             uuid.UUID            `json:"id"`
	OwnerID        uuid.UUID            `json:"ownerId"`
	OwnerName      string               `json:"ownerName"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Address        string               `json:"address"`
	Neighborhood   string               `json:"neighborhood"`
	Municipality   string               `json:"municipality"`
	Department     string               `json:"department"`
	Price          int64                `json:"price"`
	Bedrooms       int                  `json:"bedrooms"`
	Floors         int                  `json:"floors"`
	Size           float64              `json:"size"`
	Parking        bool                 `json:"parking"`
	Furnished      bool                 `json:"furnished"`
	Latitude       float64              `json:"latitude"`
	Longitude      float64              `json:"longitude"`
	ImageURLs      []string             `json:"imageUrls"`
	AvailableTimes []AvailabilityWindow `json:"availableTimes"`
	Status         PublicationStatus    `json:"status"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}
