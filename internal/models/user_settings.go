package models

import (
	"time"

	"moneta/internal/uuid"

	"gorm.io/gorm"
)

// UserSettings holds per-user preferences. Exactly one row per user; writes
// are upserts stamped with UpdatedAt.
type UserSettings struct {
	ID                   string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID               string    `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Currency             string    `gorm:"not null;default:USD" json:"currency"`
	Language             string    `gorm:"not null;default:en" json:"language"`
	Theme                string    `gorm:"not null;default:system" json:"theme"`
	NotificationsEnabled bool      `gorm:"not null;default:true" json:"notifications_enabled"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// DefaultUserSettings returns an unsaved settings row with defaults for a
// user who has never customized anything.
func DefaultUserSettings(userID string) *UserSettings {
	return &UserSettings{
		UserID:               userID,
		Currency:             "USD",
		Language:             "en",
		Theme:                "system",
		NotificationsEnabled: true,
	}
}

// BeforeCreate hook generates a UUIDv7 for new settings rows. Settings do not
// embed Base because they are never soft-deleted.
func (s *UserSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New()
	}
	return nil
}
