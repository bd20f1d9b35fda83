package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

type ArticleService struct {
	articles ports.ArticleRepository
	topics   ports.TopicRepository
	storage  ports.ObjectStorage
	logger   zerolog.Logger
}

func NewArticleService(articles ports.ArticleRepository, topics ports.TopicRepository, storage ports.ObjectStorage, logger zerolog.Logger) *ArticleService {
	return &ArticleService{articles: articles, topics: topics, storage: storage, logger: logger}
}

func articleNotFound(id int) error {
	return domain.Errorf(domain.KindNotFound, "Article with ID %d not found", id)
}

// resolveTopic parses raw as a positive topic id and checks it exists.
func (s *ArticleService) resolveTopic(ctx context.Context, raw, missingMsg string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, domain.NewError(domain.KindValidation, "Invalid topicId provided")
	}
	if _, err := s.topics.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.NewError(domain.KindNotFound, missingMsg)
		}
		return 0, err
	}
	return id, nil
}

func (s *ArticleService) CreateArticle(ctx context.Context, in ports.ArticleInput) (*domain.Article, error) {
	if in.Title == "" || in.Content == "" || in.TopicID == "" || in.Tag == "" {
		return nil, domain.NewError(domain.KindValidation, "Please add all fields")
	}
	if in.Image == nil {
		return nil, domain.NewError(domain.KindValidation, "Please upload an image")
	}

	topicID, err := s.resolveTopic(ctx, in.TopicID, "topic doesn't exist in db")
	if err != nil {
		return nil, err
	}

	obj, err := upload(ctx, s.storage, folderArticles, in.Image)
	if err != nil {
		return nil, err
	}

	article := &domain.Article{
		Title:    in.Title,
		Content:  in.Content,
		TopicID:  topicID,
		ImageURL: obj.URL,
		Key:      obj.Key,
		Tag:      in.Tag,
	}
	if err := s.articles.Create(ctx, article); err != nil {
		s.logger.Error().Err(err).Msg("failed to create article")
		return nil, domain.Wrap(domain.KindInternal, err, "Failed to create article")
	}
	return article, nil
}

func summarize(a domain.Article) domain.ArticleSummary {
	return domain.ArticleSummary{
		Article:       a,
		TotalLikes:    len(a.Likes),
		TotalComments: len(a.Comments),
	}
}

func (s *ArticleService) ListArticles(ctx context.Context, topicID int) ([]domain.ArticleSummary, error) {
	articles, err := s.articles.ListByTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ArticleSummary, 0, len(articles))
	for _, a := range articles {
		out = append(out, summarize(a))
	}
	return out, nil
}

func (s *ArticleService) GetArticle(ctx context.Context, id int) (*domain.ArticleSummary, error) {
	article, err := s.articles.FindWithEngagement(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, articleNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	summary := summarize(*article)
	return &summary, nil
}

// UpdateArticle changes only the fields present in the input.
func (s *ArticleService) UpdateArticle(ctx context.Context, id int, in ports.ArticleInput) (*domain.Article, error) {
	article, err := s.articles.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, articleNotFound(id)
	}
	if err != nil {
		return nil, err
	}

	if in.TopicID != "" {
		topicID, err := s.resolveTopic(ctx, in.TopicID, "Topic doesn't exist in db")
		if err != nil {
			return nil, err
		}
		article.TopicID = topicID
	}
	if in.Image != nil {
		obj, err := upload(ctx, s.storage, folderArticles, in.Image)
		if err != nil {
			return nil, err
		}
		article.ImageURL, article.Key = obj.URL, obj.Key
	}
	article.Title = firstNonEmpty(in.Title, article.Title)
	article.Content = firstNonEmpty(in.Content, article.Content)
	article.Tag = firstNonEmpty(in.Tag, article.Tag)

	if err := s.articles.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id int) error {
	err := s.articles.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return articleNotFound(id)
	}
	return err
}
