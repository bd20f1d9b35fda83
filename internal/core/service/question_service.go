package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

type QuestionService struct {
	repo   ports.QuestionRepository
	logger zerolog.Logger
}

func NewQuestionService(repo ports.QuestionRepository, logger zerolog.Logger) *QuestionService {
	return &QuestionService{repo: repo, logger: logger}
}

func questionNotFound(id int) error {
	return domain.Errorf(domain.KindNotFound, "Question with ID %d not found", id)
}

func (s *QuestionService) CreateQuestion(ctx context.Context, in ports.ChoiceInput) (*domain.Question, error) {
	if in.Title == "" || in.CorrectOptionID == "" || in.Option1 == "" || in.Option2 == "" ||
		in.Option3 == "" || in.Option4 == "" {
		return nil, domain.NewError(domain.KindValidation, "All fields are required")
	}

	q := &domain.Question{}
	applyChoice(&q.Title, &q.CorrectOptionID, [4]*string{&q.Option1, &q.Option2, &q.Option3, &q.Option4}, in)
	if err := s.repo.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	return s.repo.List(ctx)
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id int, in ports.ChoiceInput) (*domain.Question, error) {
	q, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, questionNotFound(id)
	}
	if err != nil {
		return nil, err
	}

	applyChoice(&q.Title, &q.CorrectOptionID, [4]*string{&q.Option1, &q.Option2, &q.Option3, &q.Option4}, in)
	if err := s.repo.Update(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id int) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return questionNotFound(id)
	}
	return err
}

// VerifyAnswer returns nil when optionID is the stored correct option.
func (s *QuestionService) VerifyAnswer(ctx context.Context, id int, optionID string) error {
	q, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return questionNotFound(id)
	}
	if err != nil {
		return err
	}
	if q.CorrectOptionID != optionID {
		return domain.NewError(domain.KindNotFound, "Incorrect answer")
	}
	return nil
}
