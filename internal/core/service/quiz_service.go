package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

type QuizService struct {
	quizzes ports.QuizRepository
	topics  ports.TopicRepository
	logger  zerolog.Logger
}

func NewQuizService(quizzes ports.QuizRepository, topics ports.TopicRepository, logger zerolog.Logger) *QuizService {
	return &QuizService{quizzes: quizzes, topics: topics, logger: logger}
}

func (s *QuizService) topicExists(ctx context.Context, id int) (bool, error) {
	_, err := s.topics.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (s *QuizService) CreateQuiz(ctx context.Context, in ports.QuizInput) (*domain.Quiz, error) {
	if in.Title == "" || in.CorrectOptionID == "" || in.Option1 == "" || in.Option2 == "" ||
		in.Option3 == "" || in.Option4 == "" || in.Duration == 0 || in.TopicID == 0 {
		return nil, domain.NewError(domain.KindValidation, "Please add all fields")
	}

	ok, err := s.topicExists(ctx, in.TopicID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NewError(domain.KindValidation, "Topic not found")
	}

	quiz := &domain.Quiz{Duration: in.Duration, TopicID: in.TopicID}
	applyChoice(&quiz.Title, &quiz.CorrectOptionID, [4]*string{&quiz.Option1, &quiz.Option2, &quiz.Option3, &quiz.Option4}, in.ChoiceInput)
	if err := s.quizzes.Create(ctx, quiz); err != nil {
		return nil, err
	}
	s.logger.Info().Int("quiz_id", quiz.ID).Int("topic_id", quiz.TopicID).Msg("quiz created")
	return quiz, nil
}

func (s *QuizService) ListQuizzes(ctx context.Context, topicID int) ([]domain.Quiz, error) {
	ok, err := s.topicExists(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, topicNotFound(topicID)
	}
	return s.quizzes.ListByTopic(ctx, topicID)
}

func (s *QuizService) UpdateQuiz(ctx context.Context, id int, in ports.QuizInput) (*domain.Quiz, error) {
	quiz, err := s.quizzes.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.Errorf(domain.KindNotFound, "Quiz with ID %d not found", id)
	}
	if err != nil {
		return nil, err
	}

	if in.TopicID != 0 {
		ok, err := s.topicExists(ctx, in.TopicID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.NewError(domain.KindValidation, "Topic not found")
		}
		quiz.TopicID = in.TopicID
	}
	if in.Duration != 0 {
		quiz.Duration = in.Duration
	}
	applyChoice(&quiz.Title, &quiz.CorrectOptionID, [4]*string{&quiz.Option1, &quiz.Option2, &quiz.Option3, &quiz.Option4}, in.ChoiceInput)

	if err := s.quizzes.Update(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) DeleteQuiz(ctx context.Context, id int) error {
	err := s.quizzes.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Errorf(domain.KindNotFound, "Quiz with ID %d not found", id)
	}
	return err
}

// applyChoice copies the non-empty fields of in onto the targets.
func applyChoice(title, correct *string, options [4]*string, in ports.ChoiceInput) {
	*title = firstNonEmpty(in.Title, *title)
	*correct = firstNonEmpty(in.CorrectOptionID, *correct)
	for i, v := range [4]string{in.Option1, in.Option2, in.Option3, in.Option4} {
		*options[i] = firstNonEmpty(v, *options[i])
	}
}
