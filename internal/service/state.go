package service

import (
	"sync"

	"go.uber.org/zap"

	"github.com/rotoapp/roto-core/internal/logger"
	"github.com/rotoapp/roto-core/internal/models"
	"github.com/rotoapp/roto-core/internal/types"
)

// ProfileState is the in-memory view of the stored profile that the UI layer
// reads from. The store owns the data; this cache changes only on explicit
// Refresh or Save, and callers always observe either the pre-save or the
// fully saved state.
type ProfileState struct {
	mu       sync.Mutex
	profiles *ProfileService

	baseIngredients []string
	dislikes        []string
	dietCategories  []types.DietCategory
}

// NewProfileState creates the coordinator and performs an initial refresh.
func NewProfileState(profiles *ProfileService) *ProfileState {
	s := &ProfileState{profiles: profiles}
	if err := s.Refresh(); err != nil {
		logger.L().Warn("initial profile refresh failed", zap.Error(err))
	}
	return s
}

// Refresh reloads the cache from the store. On read failure the cache
// resets to empty lists rather than keeping stale values; the error is
// still returned so callers can warn.
func (s *ProfileState) Refresh() error {
	profile, err := s.profiles.LoadProfile()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil || profile == nil {
		s.baseIngredients = []string{}
		s.dislikes = []string{}
		s.dietCategories = []types.DietCategory{}
		return err
	}
	s.baseIngredients = profile.BaseIngredients()
	s.dislikes = profile.Dislikes()
	s.dietCategories = profile.DietCategories()
	return nil
}

// Save writes the given fields through to the store and, only on success,
// replaces the cache. A failed save leaves the cache at its pre-save state.
func (s *ProfileState) Save(baseIngredients, dislikes []string, dietCategories []types.DietCategory) error {
	profile := models.NewUserProfile(baseIngredients, dislikes, dietCategories)
	if err := s.profiles.SaveProfile(profile); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseIngredients = profile.BaseIngredients()
	s.dislikes = profile.Dislikes()
	s.dietCategories = profile.DietCategories()
	return nil
}

// BaseIngredients returns a copy of the cached pantry staples.
func (s *ProfileState) BaseIngredients() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.baseIngredients...)
}

// Dislikes returns a copy of the cached excluded ingredients.
func (s *ProfileState) Dislikes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.dislikes...)
}

// DietCategories returns a copy of the cached diet selections.
func (s *ProfileState) DietCategories() []types.DietCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.DietCategory{}, s.dietCategories...)
}
