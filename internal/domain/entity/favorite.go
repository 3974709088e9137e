package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks a publication as saved by a user. The (user,
// publication) pair is unique.
type Favorite struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	PublicationID uuid.UUID `json:"publicationId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FavoriteListing bundles a favorite with the denormalized publication
// fields the listing pages render, avoiding an N+1 lookup.
type FavoriteListing struct {
	Favorite    Favorite     `json:"favorite"`
	Publication *Publication `json:"publication"`
}
