package service

import (
	"context"

	"github.com/rotoapp/roto-core/internal/types"
)

// GenerateEndpoint is the single backend capability this service targets.
const GenerateEndpoint = "/generate"

// Poster is the outbound transport used by RecipeService. *client.Client
// satisfies it; tests substitute their own.
type Poster interface {
	Post(ctx context.Context, endpoint string, body, out any) error
}

// RecipeService orchestrates one generation request. It is stateless: one
// network call per invocation, no retry, no caching.
type RecipeService struct {
	client Poster
}

func NewRecipeService(client Poster) *RecipeService {
	return &RecipeService{client: client}
}

// GenerateRecipes builds the payload, posts it to the generation endpoint
// and maps the decoded DTOs into recipes. Errors come straight from the
// client's taxonomy.
func (s *RecipeService) GenerateRecipes(ctx context.Context, ingredients, dislikes []string, notes string) ([]types.Recipe, error) {
	payload := types.NewGenerateRecipePayload(ingredients, dislikes, notes)

	var resp types.RecipeResponse
	if err := s.client.Post(ctx, GenerateEndpoint, payload, &resp); err != nil {
		return nil, err
	}
	return resp.ToModels(), nil
}
