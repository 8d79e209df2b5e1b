package service

import (
	"context"
	"fmt"

	"github.com/DanRulev/modelrepos.git/internal/models"
	"go.uber.org/zap"
)

type RecipeS struct {
	repo RecipeRI
	log  *zap.Logger
}

func NewRecipeService(repo RecipeRI, log *zap.Logger) *RecipeS {
	return &RecipeS{
		repo: repo,
		log:  log,
	}
}

// Directory renders every recipe as one console line.
func (r *RecipeS) Directory(ctx context.Context) ([]string, error) {
	recipes, err := r.repo.All(ctx)
	if err != nil {
		r.log.Error("failed to list recipes", zap.Error(err))
		return nil, err
	}

	lines := make([]string, 0, len(recipes))
	for _, recipe := range recipes {
		lines = append(lines, formatRecipe(recipe))
	}

	return lines, nil
}

func (r *RecipeS) Recipe(ctx context.Context, id int64) (string, error) {
	recipe, err := r.repo.Find(ctx, id)
	if err != nil {
		r.log.Error("failed to find recipe", zap.Int64("id", id), zap.Error(err))
		return "", err
	}

	return formatRecipe(recipe), nil
}

func formatRecipe(recipe models.Recipe) string {
	return fmt.Sprintf("%d. %s %dmins %d/5", recipe.ID, recipe.Name, recipe.CookingTime, recipe.Rating)
}
