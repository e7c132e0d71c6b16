package types

// GenerateRecipePayload is the request body for the generation endpoint.
// It is built fresh for every request and never persisted.
type GenerateRecipePayload struct {
	Ingredients []string `json:"ingredients"`
	Dislikes    []string `json:"dislikes"`
	Notes       string   `json:"notes"`
}

// NewGenerateRecipePayload normalizes nil slices so the request body always
// carries JSON arrays rather than null.
func NewGenerateRecipePayload(ingredients, dislikes []string, notes string) GenerateRecipePayload {
	if ingredients == nil {
		ingredients = []string{}
	}
	if dislikes == nil {
		dislikes = []string{}
	}
	return GenerateRecipePayload{
		Ingredients: ingredients,
		Dislikes:    dislikes,
		Notes:       notes,
	}
}
