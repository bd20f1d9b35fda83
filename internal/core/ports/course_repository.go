package ports

import (
	"context"

	"github.com/careercharma/learnhub-api/internal/core/domain"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.CourseCategory) error
	Update(ctx context.Context, category *domain.CourseCategory) error
	FindByID(ctx context.Context, id string) (*domain.CourseCategory, error)
	FindByName(ctx context.Context, name string) (*domain.CourseCategory, error)
	List(ctx context.Context) ([]domain.CourseCategory, error)
	Delete(ctx context.Context, id string) error
}

// CourseRepository covers the course tree: courses, their sections and
// the subsections under each section.
type CourseRepository interface {
	CreateCourse(ctx context.Context, course *domain.Course) error
	UpdateCourse(ctx context.Context, course *domain.Course) error
	FindCourse(ctx context.Context, id string) (*domain.Course, error)
	FindCourseTree(ctx context.Context, id string) (*domain.Course, error)
	ListCourseTrees(ctx context.Context) ([]domain.Course, error)
	DeleteCourse(ctx context.Context, id string) error

	CreateSection(ctx context.Context, section *domain.Section) error
	UpdateSection(ctx context.Context, section *domain.Section) error
	FindSection(ctx context.Context, id string) (*domain.Section, error)
	DeleteSection(ctx context.Context, id string) error

	CreateSubSection(ctx context.Context, sub *domain.SubSection) error
	UpdateSubSection(ctx context.Context, sub *domain.SubSection) error
	FindSubSection(ctx context.Context, id string) (*domain.SubSection, error)
	DeleteSubSection(ctx context.Context, id string) error
}
