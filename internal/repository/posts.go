package repository

import (
	"context"
	"fmt"

	"github.com/DanRulev/modelrepos.git/internal/models"
)

type PostR struct {
	db QueryI
}

func NewPostRepository(db QueryI) *PostR {
	return &PostR{db: db}
}

func (p *PostR) All(ctx context.Context) ([]models.Post, error) {
	query := `SELECT id, title, content, views, account_id FROM posts ORDER BY id;`

	posts := make([]models.Post, 0)
	if err := p.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (p *PostR) Find(ctx context.Context, id int64) (models.Post, error) {
	query := `SELECT id, title, content, views, account_id FROM posts WHERE id = $1;`

	var post models.Post
	if err := p.db.GetContext(ctx, &post, query, id); err != nil {
		return models.Post{}, notFound(err, "post", id)
	}

	return post, nil
}

func (p *PostR) Create(ctx context.Context, post models.Post) error {
	query := `INSERT INTO posts (title, content, views, account_id)
		VALUES (:title, :content, :views, :account_id);`

	if _, err := p.db.NamedExecContext(ctx, query, post); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (p *PostR) Update(ctx context.Context, post models.Post) error {
	query := `UPDATE posts
		SET title = :title, content = :content, views = :views, account_id = :account_id
		WHERE id = :id;`

	if _, err := p.db.NamedExecContext(ctx, query, post); err != nil {
		return fmt.Errorf("failed to update post %d: %w", post.ID, err)
	}

	return nil
}

func (p *PostR) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM posts WHERE id = $1;`

	if _, err := p.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete post %d: %w", id, err)
	}

	return nil
}
