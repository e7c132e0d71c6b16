package types

// Instruction is a single ordered step of a recipe.
type Instruction struct {
	Step  string `json:"step"`
	Order int    `json:"order"`
}

// RecipeIngredient is one ingredient line of a recipe.
type RecipeIngredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// Recipe is the in-memory representation of a generated recipe.
type Recipe struct {
	Name         string             `json:"name"`
	Description  string             `json:"description,omitempty"`
	TimeEstimate string             `json:"time_estimate,omitempty"`
	Instructions []Instruction      `json:"instructions"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
}

// Equal reports whether two recipes are the same for deduplication
// purposes. Identity is name, description and time estimate; instruction
// and ingredient contents do not participate.
func (r Recipe) Equal(other Recipe) bool {
	return r.Name == other.Name &&
		r.Description == other.Description &&
		r.TimeEstimate == other.TimeEstimate
}
