package ports

import (
	"context"

	"github.com/careercharma/learnhub-api/internal/core/domain"
)

type TopicService interface {
	CreateTopic(ctx context.Context, name string, image *UploadFile) (*domain.Topic, error)
	ListTopics(ctx context.Context) ([]domain.Topic, error)
	UpdateTopic(ctx context.Context, id int, name string, image *UploadFile) (*domain.Topic, error)
	DeleteTopic(ctx context.Context, id int) error
}

// ArticleInput is shared by create and partial update. TopicID stays raw
// so the service can reject values that are not positive integers.
type ArticleInput struct {
	Title   string
	Content string
	TopicID string
	Tag     string
	Image   *UploadFile
}

type ArticleService interface {
	CreateArticle(ctx context.Context, in ArticleInput) (*domain.Article, error)
	ListArticles(ctx context.Context, topicID int) ([]domain.ArticleSummary, error)
	GetArticle(ctx context.Context, id int) (*domain.ArticleSummary, error)
	UpdateArticle(ctx context.Context, id int, in ArticleInput) (*domain.Article, error)
	DeleteArticle(ctx context.Context, id int) error
}

// ChoiceInput holds the four options and the correct one for quizzes and
// questions. Empty fields are left unchanged on update.
type ChoiceInput struct {
	Title           string
	CorrectOptionID string
	Option1         string
	Option2         string
	Option3         string
	Option4         string
}

type QuizInput struct {
	ChoiceInput
	Duration int
	TopicID  int
}

type QuizService interface {
	CreateQuiz(ctx context.Context, in QuizInput) (*domain.Quiz, error)
	ListQuizzes(ctx context.Context, topicID int) ([]domain.Quiz, error)
	UpdateQuiz(ctx context.Context, id int, in QuizInput) (*domain.Quiz, error)
	DeleteQuiz(ctx context.Context, id int) error
}

type QuestionService interface {
	CreateQuestion(ctx context.Context, in ChoiceInput) (*domain.Question, error)
	ListQuestions(ctx context.Context) ([]domain.Question, error)
	UpdateQuestion(ctx context.Context, id int, in ChoiceInput) (*domain.Question, error)
	DeleteQuestion(ctx context.Context, id int) error
	VerifyAnswer(ctx context.Context, id int, optionID string) error
}

// LikeResult reports the outcome of a like toggle. Like is nil when the
// toggle removed an existing like.
type LikeResult struct {
	Liked bool
	Like  *domain.Like
}

type EngagementService interface {
	ToggleLike(ctx context.Context, userID, articleID int) (*LikeResult, error)
	CreateComment(ctx context.Context, userID, articleID int, content string) (*domain.Comment, error)
	ListUserComments(ctx context.Context, userID int) ([]domain.Comment, error)
	UpdateComment(ctx context.Context, userID, commentID int, content string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, userID, commentID int) error
}
