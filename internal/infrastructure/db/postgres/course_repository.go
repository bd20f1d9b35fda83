package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/careercharma/learnhub-api/internal/core/domain"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.CourseCategory) error {
	return translate(r.db.WithContext(ctx).Create(c).Error, "insert category")
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.CourseCategory) error {
	return translate(r.db.WithContext(ctx).Save(c).Error, "update category")
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*domain.CourseCategory, error) {
	var c domain.CourseCategory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, translate(err, "find category")
	}
	return &c, nil
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*domain.CourseCategory, error) {
	var c domain.CourseCategory
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&c).Error; err != nil {
		return nil, translate(err, "find category")
	}
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.CourseCategory, error) {
	var categories []domain.CourseCategory
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, translate(err, "list categories")
	}
	return categories, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	return deleted(r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.CourseCategory{}), "delete category")
}

// CourseRepository persists the course tree. Deleting a course or section
// relies on ON DELETE CASCADE for its children.
type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) CreateCourse(ctx context.Context, c *domain.Course) error {
	return translate(r.db.WithContext(ctx).Create(c).Error, "insert course")
}

func (r *CourseRepository) UpdateCourse(ctx context.Context, c *domain.Course) error {
	return translate(r.db.WithContext(ctx).Omit("Sections", "Category").Save(c).Error, "update course")
}

func (r *CourseRepository) FindCourse(ctx context.Context, id string) (*domain.Course, error) {
	var c domain.Course
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, translate(err, "find course")
	}
	return &c, nil
}

func (r *CourseRepository) tree(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Sections.Subsections", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") })
}

func (r *CourseRepository) FindCourseTree(ctx context.Context, id string) (*domain.Course, error) {
	var c domain.Course
	if err := r.tree(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, translate(err, "find course")
	}
	return &c, nil
}

func (r *CourseRepository) ListCourseTrees(ctx context.Context) ([]domain.Course, error) {
	var courses []domain.Course
	if err := r.tree(ctx).Order("created_at ASC").Find(&courses).Error; err != nil {
		return nil, translate(err, "list courses")
	}
	return courses, nil
}

func (r *CourseRepository) DeleteCourse(ctx context.Context, id string) error {
	return deleted(r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Course{}), "delete course")
}

func (r *CourseRepository) CreateSection(ctx context.Context, s *domain.Section) error {
	return translate(r.db.WithContext(ctx).Create(s).Error, "insert section")
}

func (r *CourseRepository) UpdateSection(ctx context.Context, s *domain.Section) error {
	return translate(r.db.WithContext(ctx).Omit("Subsections").Save(s).Error, "update section")
}

func (r *CourseRepository) FindSection(ctx context.Context, id string) (*domain.Section, error) {
	var s domain.Section
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, translate(err, "find section")
	}
	return &s, nil
}

func (r *CourseRepository) DeleteSection(ctx context.Context, id string) error {
	return deleted(r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Section{}), "delete section")
}

func (r *CourseRepository) CreateSubSection(ctx context.Context, s *domain.SubSection) error {
	return translate(r.db.WithContext(ctx).Create(s).Error, "insert subsection")
}

func (r *CourseRepository) UpdateSubSection(ctx context.Context, s *domain.SubSection) error {
	return translate(r.db.WithContext(ctx).Save(s).Error, "update subsection")
}

func (r *CourseRepository) FindSubSection(ctx context.Context, id string) (*domain.SubSection, error) {
	var s domain.SubSection
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, translate(err, "find subsection")
	}
	return &s, nil
}

func (r *CourseRepository) DeleteSubSection(ctx context.Context, id string) error {
	return deleted(r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.SubSection{}), "delete subsection")
}
