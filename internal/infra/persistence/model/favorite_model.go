package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel mirrors the 'favorites' table. The (user_id,
// publication_id) pair is unique so a listing can be saved once.
type FavoriteModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_publication"`
	PublicationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_publication"`
	CreatedAt     time.Time

	Publication *PublicationModel `gorm:"foreignKey:PublicationID"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
