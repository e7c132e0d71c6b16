package devserver

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rotoapp/roto-core/internal/logger"
	"github.com/rotoapp/roto-core/internal/types"
)

// Server is a local stand-in for the remote generation endpoint. It speaks
// the same wire protocol and returns canned recipes built from the request,
// which makes end-to-end runs possible without the deployed backend.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New creates the development server.
func New() *Server {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/generate", handleGenerate)

	return &Server{router: router}
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start begins serving on the given port and blocks until shutdown.
func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	logger.L().Info("dev server listening", zap.String("port", port))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("dev server error: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func handleGenerate(c *gin.Context) {
	var payload types.GenerateRecipePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	logger.L().Info("generate request",
		zap.String("request_id", c.GetHeader("X-Request-ID")),
		zap.String("device_id", c.GetHeader("X-Device-ID")),
		zap.Strings("ingredients", payload.Ingredients),
		zap.Strings("dislikes", payload.Dislikes))

	body, err := types.EncodeRecipes(cannedRecipes(payload))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "encoding failed"})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// cannedRecipes fabricates a deterministic response from the request so the
// round trip through the client is meaningful.
func cannedRecipes(payload types.GenerateRecipePayload) []types.Recipe {
	ingredients := make([]types.RecipeIngredient, 0, len(payload.Ingredients))
	for _, name := range payload.Ingredients {
		ingredients = append(ingredients, types.RecipeIngredient{Name: name, Quantity: "1 cup"})
	}
	if len(ingredients) == 0 {
		ingredients = append(ingredients, types.RecipeIngredient{Name: "flour", Quantity: "2 cups"})
	}

	title := "Pantry Bake"
	if len(payload.Ingredients) > 0 {
		title = capitalize(payload.Ingredients[0]) + " Bake"
	}

	return []types.Recipe{
		{
			Name:         title,
			Description:  "A development-mode recipe assembled from your pantry.",
			TimeEstimate: "30 min",
			Instructions: []types.Instruction{
				{Step: "Preheat the oven to 400F", Order: 0},
				{Step: "Combine all ingredients in a baking dish", Order: 1},
				{Step: "Bake until golden", Order: 2},
			},
			Ingredients: ingredients,
		},
	}
}
