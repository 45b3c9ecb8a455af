package services

import (
	"errors"

	"github.com/mohamedabdelbaset2026-cyber/POS/models"
	"gorm.io/gorm"
)

// SettingAPIKey is the one key this system persists: the AI service
// credential, read at startup and written on explicit save.
const SettingAPIKey = "GEMINI_API_KEY"

// SettingsService reads and writes scalar settings in the local store.
type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

// Get returns the stored value, or an empty string when the key has never
// been written.
func (s *SettingsService) Get(key string) (string, error) {
	var setting models.Setting
	if err := s.DB.First(&setting, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return setting.Value, nil
}

// Set upserts the value for key.
func (s *SettingsService) Set(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	return s.DB.Save(&setting).Error
}
