package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rotoapp/roto-core/internal/logger"
	"github.com/rotoapp/roto-core/internal/models"
)

// ProfileService persists the singleton user profile.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// SaveProfile replaces the stored profile. Delete and insert run in one
// transaction so a failed insert can never leave the store empty.
func (s *ProfileService) SaveProfile(profile *models.UserProfile) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.UserProfile{}).Error; err != nil {
			return err
		}
		return tx.Create(profile).Error
	})
	if err != nil {
		logger.L().Error("failed to save profile", zap.Error(err))
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

// LoadProfile returns the stored profile, or nil when none exists. If more
// than one record exists the first is returned; the extra rows are an
// invariant violation the next save cleans up.
func (s *ProfileService) LoadProfile() (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.Order("id").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	return &profile, nil
}
