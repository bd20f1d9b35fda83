package ports

import (
	"context"

	"github.com/careercharma/learnhub-api/internal/core/domain"
)

type TopicRepository interface {
	Create(ctx context.Context, topic *domain.Topic) error
	Update(ctx context.Context, topic *domain.Topic) error
	FindByID(ctx context.Context, id int) (*domain.Topic, error)
	FindByName(ctx context.Context, name string) (*domain.Topic, error)
	List(ctx context.Context) ([]domain.Topic, error)
	Delete(ctx context.Context, id int) error
}

// ArticleRepository loads articles with their likes and comments preloaded
// on the read paths that report engagement totals.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	Update(ctx context.Context, article *domain.Article) error
	FindByID(ctx context.Context, id int) (*domain.Article, error)
	FindWithEngagement(ctx context.Context, id int) (*domain.Article, error)
	ListByTopic(ctx context.Context, topicID int) ([]domain.Article, error)
	Delete(ctx context.Context, id int) error
}

type QuizRepository interface {
	Create(ctx context.Context, quiz *domain.Quiz) error
	Update(ctx context.Context, quiz *domain.Quiz) error
	FindByID(ctx context.Context, id int) (*domain.Quiz, error)
	ListByTopic(ctx context.Context, topicID int) ([]domain.Quiz, error)
	Delete(ctx context.Context, id int) error
}

type QuestionRepository interface {
	Create(ctx context.Context, question *domain.Question) error
	Update(ctx context.Context, question *domain.Question) error
	FindByID(ctx context.Context, id int) (*domain.Question, error)
	List(ctx context.Context) ([]domain.Question, error)
	Delete(ctx context.Context, id int) error
}

type EngagementRepository interface {
	FindLike(ctx context.Context, userID, articleID int) (*domain.Like, error)
	CreateLike(ctx context.Context, like *domain.Like) error
	DeleteLike(ctx context.Context, userID, articleID int) error

	CreateComment(ctx context.Context, comment *domain.Comment) error
	UpdateComment(ctx context.Context, comment *domain.Comment) error
	FindComment(ctx context.Context, id int) (*domain.Comment, error)
	ListCommentsByUser(ctx context.Context, userID int) ([]domain.Comment, error)
	DeleteComment(ctx context.Context, id int) error
}
