package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"unicode/utf8"
)

// RecipeResponse is the top-level body returned by the generation endpoint.
type RecipeResponse struct {
	Recipe []RecipeDTO `json:"recipe"`
}

// UnmarshalJSON implements json.Unmarshaler with strict semantics: the
// top-level recipe key must be present and every element must carry its
// required keys. Any failure rejects the whole body.
func (r *RecipeResponse) UnmarshalJSON(data []byte) error {
	// encoding/json would silently substitute U+FFFD for invalid bytes,
	// mangling recipe names instead of failing.
	if !utf8.Valid(data) {
		return fmt.Errorf("response body is not valid UTF-8")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid response body: %w", err)
	}
	body, ok := raw["recipe"]
	if !ok {
		return fmt.Errorf("response missing recipe key")
	}

	var dtos []RecipeDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		return fmt.Errorf("invalid recipe array: %w", err)
	}
	for i := range dtos {
		if err := dtos[i].Validate(); err != nil {
			return fmt.Errorf("recipe element %d: %w", i, err)
		}
	}
	r.Recipe = dtos
	return nil
}

// RecipeDTO is the wire representation of a single recipe. The generation
// backend capitalizes most keys; name and description are the exceptions.
type RecipeDTO struct {
	Name              *string               `json:"name"`
	Description       *string               `json:"description,omitempty"`
	TimeEstimate      *string               `json:"TimeEstimate,omitempty"`
	Instructions      *InstructionsDTO      `json:"Instructions"`
	ListOfIngredients *ListOfIngredientsDTO `json:"ListOfIngredients"`
}

// InstructionsDTO wraps the ordered step list.
type InstructionsDTO struct {
	Step []string `json:"Step"`
}

// ListOfIngredientsDTO wraps the ingredient list.
type ListOfIngredientsDTO struct {
	Ingredient []IngredientDTO `json:"Ingredient"`
}

// IngredientDTO is one wire-format ingredient.
type IngredientDTO struct {
	IngredientName     string `json:"IngredientName"`
	IngredientQuantity string `json:"IngredientQuantity"`
}

// Validate checks that the required wire keys were present.
func (d *RecipeDTO) Validate() error {
	if d.Name == nil {
		return fmt.Errorf("recipe element missing name")
	}
	if d.Instructions == nil || d.Instructions.Step == nil {
		return fmt.Errorf("recipe %q missing Instructions.Step", *d.Name)
	}
	if d.ListOfIngredients == nil || d.ListOfIngredients.Ingredient == nil {
		return fmt.Errorf("recipe %q missing ListOfIngredients.Ingredient", *d.Name)
	}
	return nil
}

// ToModel converts a validated DTO into a Recipe. Instruction order is
// assigned from array position.
func (d *RecipeDTO) ToModel() Recipe {
	r := Recipe{Name: *d.Name}
	if d.Description != nil {
		r.Description = *d.Description
	}
	if d.TimeEstimate != nil {
		r.TimeEstimate = *d.TimeEstimate
	}
	for i, step := range d.Instructions.Step {
		r.Instructions = append(r.Instructions, Instruction{Step: step, Order: i})
	}
	for _, ing := range d.ListOfIngredients.Ingredient {
		r.Ingredients = append(r.Ingredients, RecipeIngredient{
			Name:     ing.IngredientName,
			Quantity: ing.IngredientQuantity,
		})
	}
	return r
}

// DecodeRecipes parses a generation response body into recipes. Decoding is
// all-or-nothing: a missing top-level recipe key or any invalid element
// fails the whole call.
func DecodeRecipes(data []byte) ([]Recipe, error) {
	var resp RecipeResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	return resp.ToModels(), nil
}

// ToModels maps every decoded DTO into its model form.
func (r *RecipeResponse) ToModels() []Recipe {
	recipes := make([]Recipe, 0, len(r.Recipe))
	for i := range r.Recipe {
		recipes = append(recipes, r.Recipe[i].ToModel())
	}
	return recipes
}

// ToDTO projects a Recipe back into its wire shape. Steps are emitted in
// stored order, not slice order.
func (r Recipe) ToDTO() RecipeDTO {
	sorted := make([]Instruction, len(r.Instructions))
	copy(sorted, r.Instructions)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	steps := make([]string, 0, len(sorted))
	for _, ins := range sorted {
		steps = append(steps, ins.Step)
	}
	ingredients := make([]IngredientDTO, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, IngredientDTO{
			IngredientName:     ing.Name,
			IngredientQuantity: ing.Quantity,
		})
	}

	name := r.Name
	dto := RecipeDTO{
		Name:              &name,
		Instructions:      &InstructionsDTO{Step: steps},
		ListOfIngredients: &ListOfIngredientsDTO{Ingredient: ingredients},
	}
	if r.Description != "" {
		desc := r.Description
		dto.Description = &desc
	}
	if r.TimeEstimate != "" {
		est := r.TimeEstimate
		dto.TimeEstimate = &est
	}
	return dto
}

// EncodeRecipes serializes recipes into the generation response format,
// suitable for re-emitting a previously decoded body.
func EncodeRecipes(recipes []Recipe) ([]byte, error) {
	resp := RecipeResponse{Recipe: make([]RecipeDTO, 0, len(recipes))}
	for _, r := range recipes {
		resp.Recipe = append(resp.Recipe, r.ToDTO())
	}
	return json.Marshal(resp)
}
