package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

type TopicService struct {
	repo    ports.TopicRepository
	storage ports.ObjectStorage
	logger  zerolog.Logger
}

func NewTopicService(repo ports.TopicRepository, storage ports.ObjectStorage, logger zerolog.Logger) *TopicService {
	return &TopicService{repo: repo, storage: storage, logger: logger}
}

func topicNotFound(id int) error {
	return domain.Errorf(domain.KindNotFound, "Topic with ID %d not found", id)
}

func (s *TopicService) CreateTopic(ctx context.Context, name string, image *ports.UploadFile) (*domain.Topic, error) {
	if name == "" || image == nil {
		return nil, domain.NewError(domain.KindValidation, "Please add all fields")
	}

	conflict := domain.NewError(domain.KindConflict, "topic already exist in db")
	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, conflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	obj, err := upload(ctx, s.storage, folderTopics, image)
	if err != nil {
		return nil, err
	}

	topic := &domain.Topic{Name: name, TopicImage: obj.URL, ImageKey: obj.Key}
	if err := s.repo.Create(ctx, topic); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, conflict
		}
		return nil, err
	}
	s.logger.Info().Int("topic_id", topic.ID).Msg("topic created")
	return topic, nil
}

func (s *TopicService) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	return s.repo.List(ctx)
}

func (s *TopicService) UpdateTopic(ctx context.Context, id int, name string, image *ports.UploadFile) (*domain.Topic, error) {
	topic, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, topicNotFound(id)
	}
	if err != nil {
		return nil, err
	}

	if image != nil {
		obj, err := upload(ctx, s.storage, folderTopics, image)
		if err != nil {
			return nil, err
		}
		topic.TopicImage, topic.ImageKey = obj.URL, obj.Key
	}
	topic.Name = firstNonEmpty(name, topic.Name)

	if err := s.repo.Update(ctx, topic); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewError(domain.KindConflict, "topic already exist in db")
		}
		return nil, err
	}
	return topic, nil
}

func (s *TopicService) DeleteTopic(ctx context.Context, id int) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Errorf(domain.KindNotFound, "topic with ID %d not found", id)
	}
	return err
}
