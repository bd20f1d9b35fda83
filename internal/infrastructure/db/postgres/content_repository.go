package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/careercharma/learnhub-api/internal/core/domain"
)

type TopicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{db: db}
}

func (r *TopicRepository) Create(ctx context.Context, topic *domain.Topic) error {
	return translate(r.db.WithContext(ctx).Create(topic).Error, "insert topic")
}

func (r *TopicRepository) Update(ctx context.Context, topic *domain.Topic) error {
	return translate(r.db.WithContext(ctx).Save(topic).Error, "update topic")
}

func (r *TopicRepository) FindByID(ctx context.Context, id int) (*domain.Topic, error) {
	var topic domain.Topic
	if err := r.db.WithContext(ctx).First(&topic, id).Error; err != nil {
		return nil, translate(err, "find topic")
	}
	return &topic, nil
}

func (r *TopicRepository) FindByName(ctx context.Context, name string) (*domain.Topic, error) {
	var topic domain.Topic
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&topic).Error; err != nil {
		return nil, translate(err, "find topic")
	}
	return &topic, nil
}

func (r *TopicRepository) List(ctx context.Context) ([]domain.Topic, error) {
	var topics []domain.Topic
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&topics).Error; err != nil {
		return nil, translate(err, "list topics")
	}
	return topics, nil
}

func (r *TopicRepository) Delete(ctx context.Context, id int) error {
	return deleted(r.db.WithContext(ctx).Delete(&domain.Topic{}, id), "delete topic")
}

type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	return translate(r.db.WithContext(ctx).Create(article).Error, "insert article")
}

func (r *ArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	return translate(r.db.WithContext(ctx).Omit("Likes", "Comments", "Topic").Save(article).Error, "update article")
}

func (r *ArticleRepository) FindByID(ctx context.Context, id int) (*domain.Article, error) {
	var article domain.Article
	if err := r.db.WithContext(ctx).First(&article, id).Error; err != nil {
		return nil, translate(err, "find article")
	}
	return &article, nil
}

func (r *ArticleRepository) FindWithEngagement(ctx context.Context, id int) (*domain.Article, error) {
	var article domain.Article
	err := r.db.WithContext(ctx).
		Preload("Likes").
		Preload("Comments").
		First(&article, id).Error
	if err != nil {
		return nil, translate(err, "find article")
	}
	return &article, nil
}

func (r *ArticleRepository) ListByTopic(ctx context.Context, topicID int) ([]domain.Article, error) {
	var articles []domain.Article
	err := r.db.WithContext(ctx).
		Preload("Likes").
		Preload("Comments").
		Where("topic_id = ?", topicID).
		Order("id ASC").
		Find(&articles).Error
	if err != nil {
		return nil, translate(err, "list articles")
	}
	return articles, nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id int) error {
	return deleted(r.db.WithContext(ctx).Delete(&domain.Article{}, id), "delete article")
}

type QuizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

func (r *QuizRepository) Create(ctx context.Context, quiz *domain.Quiz) error {
	return translate(r.db.WithContext(ctx).Create(quiz).Error, "insert quiz")
}

func (r *QuizRepository) Update(ctx context.Context, quiz *domain.Quiz) error {
	return translate(r.db.WithContext(ctx).Omit("Topic").Save(quiz).Error, "update quiz")
}

func (r *QuizRepository) FindByID(ctx context.Context, id int) (*domain.Quiz, error) {
	var quiz domain.Quiz
	if err := r.db.WithContext(ctx).First(&quiz, id).Error; err != nil {
		return nil, translate(err, "find quiz")
	}
	return &quiz, nil
}

func (r *QuizRepository) ListByTopic(ctx context.Context, topicID int) ([]domain.Quiz, error) {
	var quizzes []domain.Quiz
	if err := r.db.WithContext(ctx).Where("topic_id = ?", topicID).Order("id ASC").Find(&quizzes).Error; err != nil {
		return nil, translate(err, "list quizzes")
	}
	return quizzes, nil
}

func (r *QuizRepository) Delete(ctx context.Context, id int) error {
	return deleted(r.db.WithContext(ctx).Delete(&domain.Quiz{}, id), "delete quiz")
}

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) Create(ctx context.Context, q *domain.Question) error {
	return translate(r.db.WithContext(ctx).Create(q).Error, "insert question")
}

func (r *QuestionRepository) Update(ctx context.Context, q *domain.Question) error {
	return translate(r.db.WithContext(ctx).Save(q).Error, "update question")
}

func (r *QuestionRepository) FindByID(ctx context.Context, id int) (*domain.Question, error) {
	var q domain.Question
	if err := r.db.WithContext(ctx).First(&q, id).Error; err != nil {
		return nil, translate(err, "find question")
	}
	return &q, nil
}

func (r *QuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	var questions []domain.Question
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, translate(err, "list questions")
	}
	return questions, nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	return deleted(r.db.WithContext(ctx).Delete(&domain.Question{}, id), "delete question")
}

// EngagementRepository stores likes and comments.
type EngagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) *EngagementRepository {
	return &EngagementRepository{db: db}
}

func (r *EngagementRepository) FindLike(ctx context.Context, userID, articleID int) (*domain.Like, error) {
	var like domain.Like
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		First(&like).Error
	if err != nil {
		return nil, translate(err, "find like")
	}
	return &like, nil
}

func (r *EngagementRepository) CreateLike(ctx context.Context, like *domain.Like) error {
	return translate(r.db.WithContext(ctx).Create(like).Error, "insert like")
}

func (r *EngagementRepository) DeleteLike(ctx context.Context, userID, articleID int) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&domain.Like{})
	return deleted(res, "delete like")
}

func (r *EngagementRepository) CreateComment(ctx context.Context, comment *domain.Comment) error {
	return translate(r.db.WithContext(ctx).Create(comment).Error, "insert comment")
}

func (r *EngagementRepository) UpdateComment(ctx context.Context, comment *domain.Comment) error {
	return translate(r.db.WithContext(ctx).Omit("User").Save(comment).Error, "update comment")
}

func (r *EngagementRepository) FindComment(ctx context.Context, id int) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, translate(err, "find comment")
	}
	return &comment, nil
}

func (r *EngagementRepository) ListCommentsByUser(ctx context.Context, userID int) ([]domain.Comment, error) {
	var comments []domain.Comment
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&comments).Error; err != nil {
		return nil, translate(err, "list comments")
	}
	return comments, nil
}

func (r *EngagementRepository) DeleteComment(ctx context.Context, id int) error {
	return deleted(r.db.WithContext(ctx).Delete(&domain.Comment{}, id), "delete comment")
}
