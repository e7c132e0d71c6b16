package types

// DietCategory is one of the fixed dietary restrictions a user can select.
type DietCategory string

const (
	DietVegan       DietCategory = "Vegan"
	DietVegetarian  DietCategory = "Vegetarian"
	DietPescatarian DietCategory = "Pescatarian"
	DietGlutenFree  DietCategory = "Gluten Free"
	DietKosher      DietCategory = "Kosher"
)

// AllDietCategories lists every selectable category in display order.
var AllDietCategories = []DietCategory{
	DietVegan,
	DietVegetarian,
	DietPescatarian,
	DietGlutenFree,
	DietKosher,
}

// ParseDietCategory returns the category matching the stored raw value.
// Unknown values are rejected so stale storage entries can be skipped.
func ParseDietCategory(s string) (DietCategory, bool) {
	for _, c := range AllDietCategories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}
