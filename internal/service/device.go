package service

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rotoapp/roto-core/internal/logger"
	"github.com/rotoapp/roto-core/internal/models"
)

// DeviceService manages the install-scoped identifier attached to every
// outbound request.
type DeviceService struct {
	db *gorm.DB
}

func NewDeviceService(db *gorm.DB) *DeviceService {
	return &DeviceService{db: db}
}

// EnsureDeviceID returns the persisted device identifier, generating and
// storing one on first use.
func (s *DeviceService) EnsureDeviceID() (string, error) {
	var identity models.DeviceIdentity
	err := s.db.First(&identity).Error
	if err == nil {
		return identity.DeviceID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	identity = models.DeviceIdentity{DeviceID: uuid.NewString()}
	if err := s.db.Create(&identity).Error; err != nil {
		return "", err
	}
	logger.L().Info("generated device identifier", zap.String("device_id", identity.DeviceID))
	return identity.DeviceID, nil
}
