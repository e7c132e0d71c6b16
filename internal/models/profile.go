package models

import (
	"strings"
	"time"

	"github.com/rotoapp/roto-core/internal/types"
)

// UserProfile is the single persisted profile record. List-typed fields are
// stored as comma-joined strings with backslash escaping so ingredient names
// may themselves contain commas.
type UserProfile struct {
	ID                    uint      `gorm:"primarykey" json:"id"`
	BaseIngredientsString string    `gorm:"type:text" json:"-"`
	DislikesString        string    `gorm:"type:text" json:"-"`
	DietCategoriesString  string    `gorm:"type:text" json:"-"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// NewUserProfile builds a profile record from structured lists.
func NewUserProfile(baseIngredients, dislikes []string, dietCategories []types.DietCategory) *UserProfile {
	p := &UserProfile{}
	p.SetBaseIngredients(baseIngredients)
	p.SetDislikes(dislikes)
	p.SetDietCategories(dietCategories)
	return p
}

// BaseIngredients returns the pantry staples as a list.
func (p *UserProfile) BaseIngredients() []string {
	return DecodeListField(p.BaseIngredientsString)
}

// SetBaseIngredients replaces the pantry staples. Empty entries are dropped.
func (p *UserProfile) SetBaseIngredients(items []string) {
	p.BaseIngredientsString = EncodeListField(items)
}

// Dislikes returns the excluded ingredients as a list.
func (p *UserProfile) Dislikes() []string {
	return DecodeListField(p.DislikesString)
}

// SetDislikes replaces the excluded ingredients. Empty entries are dropped.
func (p *UserProfile) SetDislikes(items []string) {
	p.DislikesString = EncodeListField(items)
}

// DietCategories returns the selected diet categories. Stored values that no
// longer parse are skipped rather than failing the load.
func (p *UserProfile) DietCategories() []types.DietCategory {
	raw := DecodeListField(p.DietCategoriesString)
	cats := make([]types.DietCategory, 0, len(raw))
	for _, s := range raw {
		if c, ok := types.ParseDietCategory(s); ok {
			cats = append(cats, c)
		}
	}
	return cats
}

// SetDietCategories replaces the selected diet categories.
func (p *UserProfile) SetDietCategories(cats []types.DietCategory) {
	raw := make([]string, 0, len(cats))
	for _, c := range cats {
		raw = append(raw, string(c))
	}
	p.DietCategoriesString = EncodeListField(raw)
}

// EncodeListField joins a list into the stored representation. Backslashes
// and commas inside elements are escaped, empty elements are filtered, and
// an empty list encodes to the empty string.
func EncodeListField(items []string) string {
	var b strings.Builder
	first := true
	for _, item := range items {
		if item == "" {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		for i := 0; i < len(item); i++ {
			switch item[i] {
			case '\\', ',':
				b.WriteByte('\\')
			}
			b.WriteByte(item[i])
		}
	}
	return b.String()
}

// DecodeListField splits a stored representation back into a list, honoring
// escapes. The empty string and runs of bare delimiters both decode to an
// empty list, never to [""].
func DecodeListField(s string) []string {
	items := []string{}
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			items = append(items, cur.String())
			cur.Reset()
		}
	}
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s):
			i++
			cur.WriteByte(s[i])
		case s[i] == ',':
			flush()
		default:
			cur.WriteByte(s[i])
		}
	}
	flush()
	return items
}
