package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/rotoapp/roto-core/internal/client"
	"github.com/rotoapp/roto-core/internal/types"
)

func (a *app) generate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	dislikesFlag := fs.String("dislikes", "", "comma-separated ingredients to exclude for this request")
	notes := fs.String("notes", "", "free-text preferences passed to the generator")
	save := fs.String("save", "", "favorite the named recipe from the results")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Pantry staples are merged into every request; request dislikes are
	// the union of the profile's dislikes and this invocation's, profile
	// entries first.
	ingredients := mergeLists(a.profile.BaseIngredients(), fs.Args())
	dislikes := mergeLists(a.profile.Dislikes(), splitCSV(*dislikesFlag))

	// Ctrl-C abandons the in-flight request instead of waiting it out.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	recipes, err := a.recipes.GenerateRecipes(ctx, ingredients, dislikes, *notes)
	if err != nil {
		return fmt.Errorf("%s", client.UserMessage(err))
	}

	for i, r := range recipes {
		printRecipe(i+1, r)
	}

	if *save != "" {
		for _, r := range recipes {
			if r.Name == *save {
				nowFavorite, err := a.favorites.ToggleFavorite(r)
				if err != nil {
					return err
				}
				fmt.Printf("favorite %q: %v\n", r.Name, nowFavorite)
				return nil
			}
		}
		return fmt.Errorf("no generated recipe named %q to save", *save)
	}
	return nil
}

func (a *app) favoritesCmd(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("favorites requires a subcommand")
	}
	switch args[0] {
	case "list":
		favorites, err := a.favorites.GetAllFavorites()
		if err != nil {
			return err
		}
		// Stable, most recent first.
		sort.Slice(favorites, func(i, j int) bool {
			return favorites[i].FavoritedAt.After(favorites[j].FavoritedAt)
		})
		for i, fav := range favorites {
			printRecipe(i+1, fav.ToRecipe())
		}
		return nil
	case "toggle":
		if len(args) < 2 {
			return fmt.Errorf("favorites toggle requires a recipe name")
		}
		name := strings.Join(args[1:], " ")
		recipe := types.Recipe{Name: name}

		// From here only removal makes sense: toggling an unknown name
		// would insert a favorite with no instructions or ingredients.
		// Adding goes through generate -save, which has the full recipe.
		fav, err := a.favorites.IsFavorite(recipe)
		if err != nil {
			return err
		}
		if !fav {
			return fmt.Errorf("no favorite named %q (use generate -save to add one)", name)
		}

		nowFavorite, err := a.favorites.ToggleFavorite(recipe)
		if err != nil {
			return err
		}
		fmt.Printf("favorite %q: %v\n", name, nowFavorite)
		return nil
	default:
		return fmt.Errorf("unknown favorites subcommand %q", args[0])
	}
}

func (a *app) profileCmd(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("profile requires a subcommand")
	}
	switch args[0] {
	case "show":
		if err := a.profile.Refresh(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read stored profile: %v\n", err)
		}
		fmt.Printf("pantry:   %s\n", strings.Join(a.profile.BaseIngredients(), ", "))
		fmt.Printf("dislikes: %s\n", strings.Join(a.profile.Dislikes(), ", "))
		cats := a.profile.DietCategories()
		names := make([]string, 0, len(cats))
		for _, c := range cats {
			names = append(names, string(c))
		}
		fmt.Printf("diets:    %s\n", strings.Join(names, ", "))
		return nil
	case "set":
		fs := flag.NewFlagSet("profile set", flag.ExitOnError)
		ingredients := fs.String("ingredients", "", "comma-separated pantry staples")
		dislikes := fs.String("dislikes", "", "comma-separated ingredients to always exclude")
		diets := fs.String("diets", "", "comma-separated diet categories")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		var cats []types.DietCategory
		for _, raw := range splitCSV(*diets) {
			c, ok := types.ParseDietCategory(raw)
			if !ok {
				return fmt.Errorf("unknown diet category %q", raw)
			}
			cats = append(cats, c)
		}

		if err := a.profile.Save(splitCSV(*ingredients), splitCSV(*dislikes), cats); err != nil {
			// Surfaced, not fatal: the prior profile is intact.
			return fmt.Errorf("profile not saved: %w", err)
		}
		fmt.Println("profile saved")
		return nil
	default:
		return fmt.Errorf("unknown profile subcommand %q", args[0])
	}
}

func printRecipe(n int, r types.Recipe) {
	fmt.Printf("%d. %s", n, r.Name)
	if r.TimeEstimate != "" {
		fmt.Printf(" (%s)", r.TimeEstimate)
	}
	fmt.Println()
	if r.Description != "" {
		fmt.Printf("   %s\n", r.Description)
	}
	for _, ing := range r.Ingredients {
		fmt.Printf("   - %s: %s\n", ing.Name, ing.Quantity)
	}
	for i, ins := range r.Instructions {
		fmt.Printf("   %d) %s\n", i+1, ins.Step)
	}
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// mergeLists unions two lists, first list's order first, deduplicating
// case-insensitively.
func mergeLists(base, extra []string) []string {
	seen := make(map[string]bool, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, item := range list {
			key := strings.ToLower(item)
			if item == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, item)
		}
	}
	return out
}
