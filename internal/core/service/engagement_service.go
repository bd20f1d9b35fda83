package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

// EngagementService handles likes and comments. Comment edits are limited
// to the comment's author.
type EngagementService struct {
	repo     ports.EngagementRepository
	articles ports.ArticleRepository
	logger   zerolog.Logger
}

func NewEngagementService(repo ports.EngagementRepository, articles ports.ArticleRepository, logger zerolog.Logger) *EngagementService {
	return &EngagementService{repo: repo, articles: articles, logger: logger}
}

var errArticleNotFound = domain.NewError(domain.KindNotFound, "Article not found")

func (s *EngagementService) ToggleLike(ctx context.Context, userID, articleID int) (*ports.LikeResult, error) {
	if _, err := s.articles.FindByID(ctx, articleID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errArticleNotFound
		}
		return nil, err
	}

	_, err := s.repo.FindLike(ctx, userID, articleID)
	switch {
	case err == nil:
		if err := s.repo.DeleteLike(ctx, userID, articleID); err != nil {
			return nil, err
		}
		return &ports.LikeResult{Liked: false}, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	like := &domain.Like{UserID: userID, ArticleID: articleID}
	if err := s.repo.CreateLike(ctx, like); err != nil {
		// Lost a race with a concurrent like from the same user.
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewError(domain.KindConflict, "Article already liked")
		}
		return nil, err
	}
	return &ports.LikeResult{Liked: true, Like: like}, nil
}

func (s *EngagementService) CreateComment(ctx context.Context, userID, articleID int, content string) (*domain.Comment, error) {
	missing := domain.NewError(domain.KindNotFound, "all field are required")
	if articleID == 0 || content == "" {
		return nil, missing
	}
	if _, err := s.articles.FindByID(ctx, articleID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, missing
		}
		return nil, err
	}

	comment := &domain.Comment{UserID: userID, ArticleID: articleID, Content: content}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *EngagementService) ListUserComments(ctx context.Context, userID int) ([]domain.Comment, error) {
	if userID <= 0 {
		return nil, domain.NewError(domain.KindValidation, "Invalid user ID")
	}
	comments, err := s.repo.ListCommentsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, domain.NewError(domain.KindNotFound, "No comments found for this user")
	}
	return comments, nil
}

// ownComment loads the comment and checks userID wrote it.
func (s *EngagementService) ownComment(ctx context.Context, userID, commentID int, action string) (*domain.Comment, error) {
	comment, err := s.repo.FindComment(ctx, commentID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewError(domain.KindNotFound, "Comment not found")
	}
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		s.logger.Warn().Int("user_id", userID).Int("comment_id", commentID).Str("action", action).Msg("comment ownership check failed")
		return nil, domain.Errorf(domain.KindForbidden, "You do not have permission to %s this comment", action)
	}
	return comment, nil
}

func (s *EngagementService) UpdateComment(ctx context.Context, userID, commentID int, content string) (*domain.Comment, error) {
	comment, err := s.ownComment(ctx, userID, commentID, "update")
	if err != nil {
		return nil, err
	}
	comment.Content = firstNonEmpty(content, comment.Content)
	if err := s.repo.UpdateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *EngagementService) DeleteComment(ctx context.Context, userID, commentID int) error {
	if _, err := s.ownComment(ctx, userID, commentID, "delete"); err != nil {
		return err
	}
	return s.repo.DeleteComment(ctx, commentID)
}
