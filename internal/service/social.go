package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanRulev/modelrepos.git/internal/models"
	"github.com/DanRulev/modelrepos.git/internal/repository"
	"go.uber.org/zap"
)

const unknownAuthor = "unknown"

type SocialS struct {
	accounts AccountRI
	posts    PostRI
	log      *zap.Logger
}

func NewSocialService(accounts AccountRI, posts PostRI, log *zap.Logger) *SocialS {
	return &SocialS{
		accounts: accounts,
		posts:    posts,
		log:      log,
	}
}

func (s *SocialS) Accounts(ctx context.Context) ([]string, error) {
	accounts, err := s.accounts.All(ctx)
	if err != nil {
		s.log.Error("failed to list accounts", zap.Error(err))
		return nil, err
	}

	lines := make([]string, 0, len(accounts))
	for _, a := range accounts {
		lines = append(lines, fmt.Sprintf("%d. %s <%s>", a.ID, a.UserName, a.EmailAddress))
	}

	return lines, nil
}

// Feed renders every post with its author. Each distinct account is looked
// up once with a separate Find.
func (s *SocialS) Feed(ctx context.Context) ([]string, error) {
	posts, err := s.posts.All(ctx)
	if err != nil {
		s.log.Error("failed to list posts", zap.Error(err))
		return nil, err
	}

	authors := make(map[int64]string)
	lines := make([]string, 0, len(posts))
	for _, p := range posts {
		author, ok := authors[p.AccountID]
		if !ok {
			author, err = s.author(ctx, p.AccountID)
			if err != nil {
				return nil, err
			}
			authors[p.AccountID] = author
		}

		lines = append(lines, fmt.Sprintf("%d. %s by %s (%d views): %s", p.ID, p.Title, author, p.Views, p.Content))
	}

	return lines, nil
}

func (s *SocialS) author(ctx context.Context, accountID int64) (string, error) {
	account, err := s.accounts.Find(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("post author not found", zap.Int64("account_id", accountID))
			return unknownAuthor, nil
		}
		s.log.Error("failed to find post author", zap.Int64("account_id", accountID), zap.Error(err))
		return "", err
	}

	return account.UserName, nil
}

// Publish stores a new post with zero views. The author must exist.
func (s *SocialS) Publish(ctx context.Context, accountID int64, title, content string) error {
	if _, err := s.accounts.Find(ctx, accountID); err != nil {
		s.log.Error("failed to find author for new post", zap.Int64("account_id", accountID), zap.Error(err))
		return err
	}

	post := models.Post{
		Title:     title,
		Content:   content,
		AccountID: accountID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		s.log.Error("failed to publish post", zap.Int64("account_id", accountID), zap.Error(err))
		return err
	}

	return nil
}

// View bumps the views counter of a post and returns the stored result.
// Find and Update are separate round-trips without a transaction.
func (s *SocialS) View(ctx context.Context, id int64) (models.Post, error) {
	post, err := s.posts.Find(ctx, id)
	if err != nil {
		s.log.Error("failed to find post", zap.Int64("id", id), zap.Error(err))
		return models.Post{}, err
	}

	post.Views++
	if err := s.posts.Update(ctx, post); err != nil {
		s.log.Error("failed to update post views", zap.Int64("id", id), zap.Error(err))
		return models.Post{}, err
	}

	return post, nil
}
