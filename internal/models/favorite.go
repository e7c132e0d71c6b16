package models

import (
	"sort"
	"time"

	"github.com/rotoapp/roto-core/internal/types"
)

// FavoriteRecipe is a user-saved copy of a generated recipe. The recipe name
// doubles as the durable identifier; two recipes sharing a name collide.
type FavoriteRecipe struct {
	ID           uint               `gorm:"primarykey" json:"id"`
	Name         string             `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description  string             `gorm:"type:text" json:"description,omitempty"`
	TimeEstimate string             `gorm:"size:50" json:"time_estimate,omitempty"`
	FavoritedAt  time.Time          `gorm:"not null;index" json:"favorited_at"`
	Instructions []SavedInstruction `gorm:"foreignKey:FavoriteRecipeID;constraint:OnDelete:CASCADE" json:"instructions"`
	Ingredients  []SavedIngredient  `gorm:"foreignKey:FavoriteRecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func (FavoriteRecipe) TableName() string {
	return "favorite_recipes"
}

// SavedInstruction is one ordered step owned by a favorite.
type SavedInstruction struct {
	ID               uint   `gorm:"primarykey" json:"id"`
	FavoriteRecipeID uint   `gorm:"not null;index" json:"favorite_recipe_id"`
	Step             string `gorm:"type:text;not null" json:"step"`
	Order            int    `gorm:"column:step_order;not null" json:"order"`
}

func (SavedInstruction) TableName() string {
	return "saved_instructions"
}

// SavedIngredient is one ingredient row owned by a favorite. Rows carry no
// ordering.
type SavedIngredient struct {
	ID               uint   `gorm:"primarykey" json:"id"`
	FavoriteRecipeID uint   `gorm:"not null;index" json:"favorite_recipe_id"`
	Name             string `gorm:"size:255;not null" json:"name"`
	Quantity         string `gorm:"size:100" json:"quantity"`
}

func (SavedIngredient) TableName() string {
	return "saved_ingredients"
}

// NewFavoriteRecipe copies a transient recipe into a persistable favorite.
func NewFavoriteRecipe(r types.Recipe, favoritedAt time.Time) *FavoriteRecipe {
	fav := &FavoriteRecipe{
		Name:         r.Name,
		Description:  r.Description,
		TimeEstimate: r.TimeEstimate,
		FavoritedAt:  favoritedAt,
	}
	for _, ins := range r.Instructions {
		fav.Instructions = append(fav.Instructions, SavedInstruction{
			Step:  ins.Step,
			Order: ins.Order,
		})
	}
	for _, ing := range r.Ingredients {
		fav.Ingredients = append(fav.Ingredients, SavedIngredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
		})
	}
	return fav
}

// ToRecipe projects the favorite back to the transient recipe shape,
// re-sorting instructions by their stored order.
func (f *FavoriteRecipe) ToRecipe() types.Recipe {
	sorted := make([]SavedInstruction, len(f.Instructions))
	copy(sorted, f.Instructions)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	r := types.Recipe{
		Name:         f.Name,
		Description:  f.Description,
		TimeEstimate: f.TimeEstimate,
	}
	for _, ins := range sorted {
		r.Instructions = append(r.Instructions, types.Instruction{Step: ins.Step, Order: ins.Order})
	}
	for _, ing := range f.Ingredients {
		r.Ingredients = append(r.Ingredients, types.RecipeIngredient{Name: ing.Name, Quantity: ing.Quantity})
	}
	return r
}
