package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "moneta/internal/errors"
	"moneta/internal/models"
)

// settingsService handles per-user settings.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

// GetSettings returns the user's stored settings, or an unsaved defaults row
// if none exist yet. Defaults are only persisted on the first update.
func (s *settingsService) GetSettings(userID string) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := s.db.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultUserSettings(userID), nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &settings, nil
}

// UpdateSettings applies a partial update, creating the row on first use.
func (s *settingsService) UpdateSettings(userID string, update SettingsUpdate) (*models.UserSettings, error) {
	var settings *models.UserSettings

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var stored models.UserSettings
		err := tx.Where("user_id = ?", userID).First(&stored).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			settings = models.DefaultUserSettings(userID)
		case err != nil:
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		default:
			settings = &stored
		}

		if update.Currency != nil {
			settings.Currency = *update.Currency
		}
		if update.Language != nil {
			settings.Language = *update.Language
		}
		if update.Theme != nil {
			settings.Theme = *update.Theme
		}
		if update.NotificationsEnabled != nil {
			settings.NotificationsEnabled = *update.NotificationsEnabled
		}
		settings.UpdatedAt = time.Now()

		if err := tx.Save(settings).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return settings, nil
}
