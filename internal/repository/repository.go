package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go

var ErrNotFound = errors.New("record not found")

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	Recipes  *RecipeR
	Accounts *AccountR
	Posts    *PostR
}

func NewRepository(db QueryI) Repository {
	return Repository{
		Recipes:  NewRecipeRepository(db),
		Accounts: NewAccountRepository(db),
		Posts:    NewPostRepository(db),
	}
}

// notFound translates sql.ErrNoRows from a single-row lookup.
func notFound(err error, table string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", table, id, ErrNotFound)
	}
	return fmt.Errorf("failed to find %s %d: %w", table, id, err)
}
