package ports

import (
	"context"

	"github.com/careercharma/learnhub-api/internal/core/domain"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, name string) (*domain.CourseCategory, error)
	ListCategories(ctx context.Context) ([]domain.CourseCategory, error)
	UpdateCategory(ctx context.Context, id, name string) (*domain.CourseCategory, error)
	DeleteCategory(ctx context.Context, id string) error
}

// CourseInput is shared by create and partial update. Price and Duration
// arrive as form strings.
type CourseInput struct {
	CategoryID   string
	Title        string
	Description  string
	Price        string
	Duration     string
	DurationType string
	Thumbnail    *UploadFile
}

// SectionInput also describes subsections; Video is ignored for sections.
type SectionInput struct {
	Title        string
	Duration     string
	DurationType string
	Video        *UploadFile
}

type CourseService interface {
	CreateCourse(ctx context.Context, in CourseInput) (*domain.Course, error)
	GetCourse(ctx context.Context, id string) (*domain.Course, error)
	ListCourses(ctx context.Context) ([]domain.Course, error)
	UpdateCourse(ctx context.Context, id string, in CourseInput) (*domain.Course, error)
	DeleteCourse(ctx context.Context, id string) error

	CreateSection(ctx context.Context, courseID string, in SectionInput) (*domain.Section, error)
	UpdateSection(ctx context.Context, id string, in SectionInput) (*domain.Section, error)
	DeleteSection(ctx context.Context, id string) error

	CreateSubSection(ctx context.Context, sectionID string, in SectionInput) (*domain.SubSection, error)
	UpdateSubSection(ctx context.Context, id string, in SectionInput) (*domain.SubSection, error)
	DeleteSubSection(ctx context.Context, id string) error
}
