package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotoapp/roto-core/internal/models"
	"github.com/rotoapp/roto-core/internal/types"
)

func TestLoadProfileEmptyStore(t *testing.T) {
	svc := NewProfileService(setupTestDB(t))

	profile, err := svc.LoadProfile()
	assert.NoError(t, err)
	assert.Nil(t, profile)
}

func TestSaveAndLoadProfile(t *testing.T) {
	svc := NewProfileService(setupTestDB(t))

	saved := models.NewUserProfile(
		[]string{"eggs", "flour"},
		[]string{"cilantro"},
		[]types.DietCategory{types.DietVegetarian},
	)
	require.NoError(t, svc.SaveProfile(saved))

	loaded, err := svc.LoadProfile()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, []string{"eggs", "flour"}, loaded.BaseIngredients())
	assert.Equal(t, []string{"cilantro"}, loaded.Dislikes())
	assert.Equal(t, []types.DietCategory{types.DietVegetarian}, loaded.DietCategories())
}

func TestSaveProfileReplacesSingleton(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)

	require.NoError(t, svc.SaveProfile(models.NewUserProfile([]string{"eggs"}, nil, nil)))
	require.NoError(t, svc.SaveProfile(models.NewUserProfile([]string{"flour"}, nil, nil)))

	var count int64
	require.NoError(t, db.Model(&models.UserProfile{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	loaded, err := svc.LoadProfile()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, []string{"flour"}, loaded.BaseIngredients())
}

func TestLoadProfileToleratesMultipleRows(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)

	// Violate the singleton invariant directly; LoadProfile should return
	// the first row instead of failing.
	require.NoError(t, db.Create(models.NewUserProfile([]string{"first"}, nil, nil)).Error)
	require.NoError(t, db.Create(models.NewUserProfile([]string{"second"}, nil, nil)).Error)

	loaded, err := svc.LoadProfile()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, []string{"first"}, loaded.BaseIngredients())
}
