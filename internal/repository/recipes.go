package repository

import (
	"context"
	"fmt"

	"github.com/DanRulev/modelrepos.git/internal/models"
)

type RecipeR struct {
	db QueryI
}

func NewRecipeRepository(db QueryI) *RecipeR {
	return &RecipeR{db: db}
}

func (r *RecipeR) All(ctx context.Context) ([]models.Recipe, error) {
	query := `SELECT id, name, cooking_time, rating FROM recipes ORDER BY id;`

	recipes := make([]models.Recipe, 0)
	if err := r.db.SelectContext(ctx, &recipes, query); err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	return recipes, nil
}

func (r *RecipeR) Find(ctx context.Context, id int64) (models.Recipe, error) {
	query := `SELECT id, name, cooking_time, rating FROM recipes WHERE id = $1;`

	var recipe models.Recipe
	if err := r.db.GetContext(ctx, &recipe, query, id); err != nil {
		return models.Recipe{}, notFound(err, "recipe", id)
	}

	return recipe, nil
}
