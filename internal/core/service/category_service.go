package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

type CategoryService struct {
	repo   ports.CategoryRepository
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

var errCategoryExists = domain.NewError(domain.KindConflict, "Category already exist in db")

func categoryNotFound(id string) error {
	return domain.Errorf(domain.KindNotFound, "Category with ID %s not found", id)
}

func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*domain.CourseCategory, error) {
	if name == "" {
		return nil, domain.NewError(domain.KindValidation, "Please add all fields")
	}
	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, errCategoryExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	category := &domain.CourseCategory{Name: name}
	if err := s.repo.Create(ctx, category); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, errCategoryExists
		}
		return nil, err
	}
	s.logger.Info().Str("category_id", category.ID).Msg("category created")
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.CourseCategory, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id, name string) (*domain.CourseCategory, error) {
	category, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, categoryNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	category.Name = firstNonEmpty(name, category.Name)
	if err := s.repo.Update(ctx, category); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, errCategoryExists
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return categoryNotFound(id)
	}
	return err
}
