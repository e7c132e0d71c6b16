// Command roto drives the recipe core from the terminal: it plays the role
// the mobile UI plays for the real app. Subcommands cover generation,
// favorites and the profile.
package main

import (
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/rotoapp/roto-core/config"
	"github.com/rotoapp/roto-core/internal/client"
	"github.com/rotoapp/roto-core/internal/database"
	"github.com/rotoapp/roto-core/internal/logger"
	"github.com/rotoapp/roto-core/internal/service"
)

const usage = `Usage:
  roto generate [-dislikes a,b] [-notes text] [-save name] ingredient ...
  roto favorites list
  roto favorites toggle <recipe name>
  roto profile show
  roto profile set [-ingredients a,b] [-dislikes c,d] [-diets Vegan,Kosher]
`

type app struct {
	cfg       *config.Config
	db        *gorm.DB
	recipes   *service.RecipeService
	favorites *service.FavoritesService
	profile   *service.ProfileState
}

func main() {
	logger.Init()
	defer logger.Sync()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Store initialization is the one unrecoverable startup failure.
	db, err := database.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}

	deviceID, err := service.NewDeviceService(db).EnsureDeviceID()
	if err != nil {
		log.Fatalf("Failed to resolve device identifier: %v", err)
	}

	apiClient := client.New(cfg.APIBaseURL, deviceID, cfg.RequestTimeout)
	profiles := service.NewProfileService(db)

	a := &app{
		cfg:       cfg,
		db:        db,
		recipes:   service.NewRecipeService(apiClient),
		favorites: service.NewFavoritesService(db),
		profile:   service.NewProfileState(profiles),
	}

	if err := a.run(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) run(command string, args []string) error {
	switch command {
	case "generate":
		return a.generate(args)
	case "favorites":
		return a.favoritesCmd(args)
	case "profile":
		return a.profileCmd(args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}
