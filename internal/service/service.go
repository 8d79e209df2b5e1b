package service

import (
	"context"

	"github.com/DanRulev/modelrepos.git/internal/models"
	"github.com/DanRulev/modelrepos.git/internal/repository"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go

type RecipeRI interface {
	All(ctx context.Context) ([]models.Recipe, error)
	Find(ctx context.Context, id int64) (models.Recipe, error)
}

type AccountRI interface {
	All(ctx context.Context) ([]models.Account, error)
	Find(ctx context.Context, id int64) (models.Account, error)
}

type PostRI interface {
	All(ctx context.Context) ([]models.Post, error)
	Find(ctx context.Context, id int64) (models.Post, error)
	Create(ctx context.Context, post models.Post) error
	Update(ctx context.Context, post models.Post) error
}

type Service struct {
	*RecipeS
	*SocialS
}

func InitServices(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		RecipeS: NewRecipeService(repo.Recipes, log),
		SocialS: NewSocialService(repo.Accounts, repo.Posts, log),
	}
}
