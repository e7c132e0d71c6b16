package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rotoapp/roto-core/internal/logger"
	"github.com/rotoapp/roto-core/internal/models"
)

// New opens the local store and runs schema migration. A failure here is an
// unrecoverable startup error; callers are expected to exit.
func New(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	logger.L().Info("local store ready", zap.String("path", path))
	return db, nil
}

// Migrate creates or updates the schema for all persisted entities.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.UserProfile{},
		&models.FavoriteRecipe{},
		&models.SavedInstruction{},
		&models.SavedIngredient{},
		&models.DeviceIdentity{},
	)
	if err != nil {
		return fmt.Errorf("error migrating schema: %w", err)
	}
	return nil
}
