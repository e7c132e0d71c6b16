package service

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rotoapp/roto-core/internal/logger"
	"github.com/rotoapp/roto-core/internal/models"
	"github.com/rotoapp/roto-core/internal/types"
)

// FavoritesService persists user-saved recipes. Favorites are keyed by
// recipe name; the only mutation is the toggle.
type FavoritesService struct {
	db *gorm.DB
}

func NewFavoritesService(db *gorm.DB) *FavoritesService {
	return &FavoritesService{db: db}
}

// ToggleFavorite removes the favorite matching the recipe's name if one
// exists, otherwise saves a new one. Returns whether the recipe is a
// favorite after the call. The whole toggle, including the cascade delete
// of instruction and ingredient rows, runs in one transaction.
func (s *FavoritesService) ToggleFavorite(recipe types.Recipe) (bool, error) {
	var nowFavorite bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.FavoriteRecipe
		err := tx.Where("name = ?", recipe.Name).First(&existing).Error
		switch {
		case err == nil:
			if err := deleteFavorite(tx, &existing); err != nil {
				return err
			}
			nowFavorite = false
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			fav := models.NewFavoriteRecipe(recipe, time.Now())
			if err := tx.Create(fav).Error; err != nil {
				return err
			}
			nowFavorite = true
			return nil
		default:
			return err
		}
	})
	if err != nil {
		logger.L().Error("failed to toggle favorite",
			zap.String("recipe", recipe.Name), zap.Error(err))
		return false, fmt.Errorf("toggling favorite %q: %w", recipe.Name, err)
	}
	return nowFavorite, nil
}

// deleteFavorite removes a favorite and its owned rows. sqlite does not
// always enforce the schema-level cascade, so the children are deleted
// explicitly.
func deleteFavorite(tx *gorm.DB, fav *models.FavoriteRecipe) error {
	if err := tx.Where("favorite_recipe_id = ?", fav.ID).
		Delete(&models.SavedInstruction{}).Error; err != nil {
		return err
	}
	if err := tx.Where("favorite_recipe_id = ?", fav.ID).
		Delete(&models.SavedIngredient{}).Error; err != nil {
		return err
	}
	return tx.Delete(fav).Error
}

// IsFavorite reports whether a favorite with the recipe's name exists.
func (s *FavoritesService) IsFavorite(recipe types.Recipe) (bool, error) {
	var count int64
	err := s.db.Model(&models.FavoriteRecipe{}).
		Where("name = ?", recipe.Name).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking favorite %q: %w", recipe.Name, err)
	}
	return count > 0, nil
}

// GetAllFavorites returns every stored favorite with its owned rows loaded.
// No ordering is guaranteed; callers wanting stable output sort by
// FavoritedAt.
func (s *FavoritesService) GetAllFavorites() ([]models.FavoriteRecipe, error) {
	var favorites []models.FavoriteRecipe
	err := s.db.
		Preload("Instructions").
		Preload("Ingredients").
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("loading favorites: %w", err)
	}
	return favorites, nil
}
