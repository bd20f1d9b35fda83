package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

type stubCategoryRepo struct {
	categories map[string]*domain.CourseCategory
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.CourseCategory) error {
	for _, other := range r.categories {
		if other.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	if c.ID == "" {
		c.ID = "cat-" + c.Name
	}
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *domain.CourseCategory) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.CourseCategory, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*domain.CourseCategory, error) {
	for _, c := range r.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubCategoryRepo) List(context.Context) ([]domain.CourseCategory, error) {
	var out []domain.CourseCategory
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.categories, id)
	return nil
}

// stubCourseRepo keeps flat maps; FindCourseTree does not assemble children.
type stubCourseRepo struct {
	courses  map[string]*domain.Course
	sections map[string]*domain.Section
	subs     map[string]*domain.SubSection
}

func newStubCourseRepo() *stubCourseRepo {
	return &stubCourseRepo{
		courses:  make(map[string]*domain.Course),
		sections: make(map[string]*domain.Section),
		subs:     make(map[string]*domain.SubSection),
	}
}

func (r *stubCourseRepo) CreateCourse(_ context.Context, c *domain.Course) error {
	c.ID = "course-" + c.Title
	cp := *c
	r.courses[c.ID] = &cp
	return nil
}

func (r *stubCourseRepo) UpdateCourse(_ context.Context, c *domain.Course) error {
	cp := *c
	r.courses[c.ID] = &cp
	return nil
}

func (r *stubCourseRepo) FindCourse(_ context.Context, id string) (*domain.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCourseRepo) FindCourseTree(ctx context.Context, id string) (*domain.Course, error) {
	return r.FindCourse(ctx, id)
}

func (r *stubCourseRepo) ListCourseTrees(context.Context) ([]domain.Course, error) {
	var out []domain.Course
	for _, c := range r.courses {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCourseRepo) DeleteCourse(_ context.Context, id string) error {
	if _, ok := r.courses[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.courses, id)
	return nil
}

func (r *stubCourseRepo) CreateSection(_ context.Context, s *domain.Section) error {
	s.ID = "section-" + s.Title
	cp := *s
	r.sections[s.ID] = &cp
	return nil
}

func (r *stubCourseRepo) UpdateSection(_ context.Context, s *domain.Section) error {
	cp := *s
	r.sections[s.ID] = &cp
	return nil
}

func (r *stubCourseRepo) FindSection(_ context.Context, id string) (*domain.Section, error) {
	s, ok := r.sections[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubCourseRepo) DeleteSection(_ context.Context, id string) error {
	if _, ok := r.sections[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.sections, id)
	return nil
}

func (r *stubCourseRepo) CreateSubSection(_ context.Context, s *domain.SubSection) error {
	s.ID = "sub-" + s.Title
	cp := *s
	r.subs[s.ID] = &cp
	return nil
}

func (r *stubCourseRepo) UpdateSubSection(_ context.Context, s *domain.SubSection) error {
	cp := *s
	r.subs[s.ID] = &cp
	return nil
}

func (r *stubCourseRepo) FindSubSection(_ context.Context, id string) (*domain.SubSection, error) {
	s, ok := r.subs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubCourseRepo) DeleteSubSection(_ context.Context, id string) error {
	if _, ok := r.subs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.subs, id)
	return nil
}

func newCourseFixture(storage *stubStorage) (*CourseService, *stubCourseRepo) {
	categories := &stubCategoryRepo{categories: map[string]*domain.CourseCategory{
		"cat-1": {ID: "cat-1", Name: "Programming"},
	}}
	courses := newStubCourseRepo()
	return NewCourseService(courses, categories, storage, zerolog.Nop()), courses
}

func courseInput() ports.CourseInput {
	return ports.CourseInput{
		CategoryID:   "cat-1",
		Title:        "Go",
		Description:  "Learn Go",
		Price:        "499",
		Duration:     "12",
		DurationType: "hours",
		Thumbnail:    testFile("go.png"),
	}
}

func TestCategoryService_Lifecycle(t *testing.T) {
	svc := NewCategoryService(&stubCategoryRepo{categories: map[string]*domain.CourseCategory{}}, zerolog.Nop())
	ctx := context.Background()

	c, err := svc.CreateCategory(ctx, "Design")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	_, err = svc.CreateCategory(ctx, "Design")
	expectKind(t, err, http.StatusConflict, "Category already exist in db")

	updated, err := svc.UpdateCategory(ctx, c.ID, "UX")
	if err != nil || updated.Name != "UX" {
		t.Fatalf("update failed: %+v (%v)", updated, err)
	}

	err = svc.DeleteCategory(ctx, "nope")
	expectKind(t, err, http.StatusNotFound, "Category with ID nope not found")
}

func TestCourseService_Create(t *testing.T) {
	svc, _ := newCourseFixture(&stubStorage{})
	ctx := context.Background()

	noCategory := courseInput()
	noCategory.CategoryID = ""
	_, err := svc.CreateCourse(ctx, noCategory)
	expectKind(t, err, http.StatusBadRequest, "Please provide category id")

	unknown := courseInput()
	unknown.CategoryID = "cat-9"
	_, err = svc.CreateCourse(ctx, unknown)
	expectKind(t, err, http.StatusBadRequest, "category not found")

	badPrice := courseInput()
	badPrice.Price = "cheap"
	_, err = svc.CreateCourse(ctx, badPrice)
	expectKind(t, err, http.StatusBadRequest, "Invalid price provided")

	course, err := svc.CreateCourse(ctx, courseInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if course.DurationTime != "12 hours" || course.Price != 499 || course.ThumbnailKey != "courses/go.png" {
		t.Fatalf("unexpected course: %+v", course)
	}
}

func TestCourseService_UploadFailure(t *testing.T) {
	svc, courses := newCourseFixture(&stubStorage{err: errStoreDown})

	_, err := svc.CreateCourse(context.Background(), courseInput())
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if len(courses.courses) != 0 {
		t.Fatalf("expected no course to be stored")
	}
}

func TestCourseService_SectionTree(t *testing.T) {
	svc, _ := newCourseFixture(&stubStorage{})
	ctx := context.Background()
	course, _ := svc.CreateCourse(ctx, courseInput())

	_, err := svc.CreateSection(ctx, "missing", ports.SectionInput{Title: "Intro", Duration: "1", DurationType: "hour"})
	expectKind(t, err, http.StatusBadRequest, "Course not found")

	section, err := svc.CreateSection(ctx, course.ID, ports.SectionInput{Title: "Intro", Duration: "1", DurationType: "hour"})
	if err != nil {
		t.Fatalf("create section failed: %v", err)
	}

	_, err = svc.CreateSubSection(ctx, section.ID, ports.SectionInput{Title: "Setup", Duration: "5", DurationType: "min"})
	expectKind(t, err, http.StatusBadRequest, "Please upload a video")

	sub, err := svc.CreateSubSection(ctx, section.ID, ports.SectionInput{
		Title: "Setup", Duration: "5", DurationType: "min", Video: testFile("setup.mp4"),
	})
	if err != nil {
		t.Fatalf("create subsection failed: %v", err)
	}
	if sub.VideoKey != "videos/setup.mp4" || sub.SectionID != section.ID {
		t.Fatalf("unexpected subsection: %+v", sub)
	}

	updated, err := svc.UpdateSection(ctx, section.ID, ports.SectionInput{Duration: "2"})
	if err != nil {
		t.Fatalf("update section failed: %v", err)
	}
	if updated.DurationTime != "2 hour" {
		t.Fatalf("expected unit to be kept, got %q", updated.DurationTime)
	}

	err = svc.DeleteSubSection(ctx, "missing")
	expectKind(t, err, http.StatusBadRequest, "SubSection not found")
}
