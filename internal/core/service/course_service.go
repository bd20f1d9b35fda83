package service

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

// CourseService manages courses and the section/subsection tree below them.
// Missing parents are rejected as 400 since the id arrives in the query string.
type CourseService struct {
	courses    ports.CourseRepository
	categories ports.CategoryRepository
	storage    ports.ObjectStorage
	logger     zerolog.Logger
}

func NewCourseService(courses ports.CourseRepository, categories ports.CategoryRepository, storage ports.ObjectStorage, logger zerolog.Logger) *CourseService {
	return &CourseService{courses: courses, categories: categories, storage: storage, logger: logger}
}

func badRequest(kind domain.ErrorKind, msg string) error {
	return domain.NewError(kind, msg).WithStatus(http.StatusBadRequest)
}

var (
	errCourseNotFound     = badRequest(domain.KindNotFound, "Course not found")
	errSectionNotFound    = badRequest(domain.KindNotFound, "Section not found")
	errSubSectionNotFound = badRequest(domain.KindNotFound, "SubSection not found")
)

func parsePrice(raw string) (int, error) {
	price, err := strconv.Atoi(raw)
	if err != nil || price < 0 {
		return 0, domain.NewError(domain.KindValidation, "Invalid price provided")
	}
	return price, nil
}

func (s *CourseService) CreateCourse(ctx context.Context, in ports.CourseInput) (*domain.Course, error) {
	if in.Title == "" || in.Description == "" || in.Price == "" || in.Duration == "" ||
		in.DurationType == "" || in.Thumbnail == nil {
		return nil, domain.NewError(domain.KindValidation, "Please add all fields")
	}
	if in.CategoryID == "" {
		return nil, domain.NewError(domain.KindValidation, "Please provide category id")
	}
	price, err := parsePrice(in.Price)
	if err != nil {
		return nil, err
	}

	if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, badRequest(domain.KindNotFound, "category not found")
		}
		return nil, err
	}

	obj, err := upload(ctx, s.storage, folderCourses, in.Thumbnail)
	if err != nil {
		return nil, err
	}

	course := &domain.Course{
		Title:        in.Title,
		Description:  in.Description,
		Thumbnail:    obj.URL,
		ThumbnailKey: obj.Key,
		Price:        price,
		DurationTime: domain.DurationTime(in.Duration, in.DurationType),
		CategoryID:   in.CategoryID,
	}
	if err := s.courses.CreateCourse(ctx, course); err != nil {
		return nil, err
	}
	s.logger.Info().Str("course_id", course.ID).Str("category_id", course.CategoryID).Msg("course created")
	return course, nil
}

func (s *CourseService) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	course, err := s.courses.FindCourseTree(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errCourseNotFound
	}
	return course, err
}

func (s *CourseService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	return s.courses.ListCourseTrees(ctx)
}

func (s *CourseService) UpdateCourse(ctx context.Context, id string, in ports.CourseInput) (*domain.Course, error) {
	course, err := s.courses.FindCourse(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errCourseNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.CategoryID != "" {
		if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, badRequest(domain.KindNotFound, "category not found")
			}
			return nil, err
		}
		course.CategoryID = in.CategoryID
	}
	if in.Price != "" {
		if course.Price, err = parsePrice(in.Price); err != nil {
			return nil, err
		}
	}
	if in.Thumbnail != nil {
		obj, err := upload(ctx, s.storage, folderCourses, in.Thumbnail)
		if err != nil {
			return nil, err
		}
		course.Thumbnail, course.ThumbnailKey = obj.URL, obj.Key
	}
	course.Title = firstNonEmpty(in.Title, course.Title)
	course.Description = firstNonEmpty(in.Description, course.Description)
	course.DurationTime = mergeDuration(course.DurationTime, in.Duration, in.DurationType)

	if err := s.courses.UpdateCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) DeleteCourse(ctx context.Context, id string) error {
	err := s.courses.DeleteCourse(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return errCourseNotFound
	}
	return err
}

func (s *CourseService) CreateSection(ctx context.Context, courseID string, in ports.SectionInput) (*domain.Section, error) {
	if in.Title == "" || in.Duration == "" || in.DurationType == "" {
		return nil, domain.NewError(domain.KindValidation, "Please add all fields")
	}
	if courseID == "" {
		return nil, domain.NewError(domain.KindValidation, "Please provide course id")
	}
	if _, err := s.courses.FindCourse(ctx, courseID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errCourseNotFound
		}
		return nil, err
	}

	section := &domain.Section{
		Title:        in.Title,
		DurationTime: domain.DurationTime(in.Duration, in.DurationType),
		CourseID:     courseID,
	}
	if err := s.courses.CreateSection(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *CourseService) UpdateSection(ctx context.Context, id string, in ports.SectionInput) (*domain.Section, error) {
	section, err := s.courses.FindSection(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errSectionNotFound
	}
	if err != nil {
		return nil, err
	}
	section.Title = firstNonEmpty(in.Title, section.Title)
	section.DurationTime = mergeDuration(section.DurationTime, in.Duration, in.DurationType)
	if err := s.courses.UpdateSection(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *CourseService) DeleteSection(ctx context.Context, id string) error {
	err := s.courses.DeleteSection(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return errSectionNotFound
	}
	return err
}

func (s *CourseService) CreateSubSection(ctx context.Context, sectionID string, in ports.SectionInput) (*domain.SubSection, error) {
	if in.Title == "" || in.Duration == "" || in.DurationType == "" {
		return nil, domain.NewError(domain.KindValidation, "Please add all fields")
	}
	if in.Video == nil {
		return nil, domain.NewError(domain.KindValidation, "Please upload a video")
	}
	if sectionID == "" {
		return nil, domain.NewError(domain.KindValidation, "Please provide section id")
	}
	if _, err := s.courses.FindSection(ctx, sectionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errSectionNotFound
		}
		return nil, err
	}

	obj, err := upload(ctx, s.storage, folderVideos, in.Video)
	if err != nil {
		return nil, err
	}

	sub := &domain.SubSection{
		Title:        in.Title,
		VideoURL:     obj.URL,
		VideoKey:     obj.Key,
		DurationTime: domain.DurationTime(in.Duration, in.DurationType),
		SectionID:    sectionID,
	}
	if err := s.courses.CreateSubSection(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *CourseService) UpdateSubSection(ctx context.Context, id string, in ports.SectionInput) (*domain.SubSection, error) {
	sub, err := s.courses.FindSubSection(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errSubSectionNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.Video != nil {
		obj, err := upload(ctx, s.storage, folderVideos, in.Video)
		if err != nil {
			return nil, err
		}
		sub.VideoURL, sub.VideoKey = obj.URL, obj.Key
	}
	sub.Title = firstNonEmpty(in.Title, sub.Title)
	sub.DurationTime = mergeDuration(sub.DurationTime, in.Duration, in.DurationType)

	if err := s.courses.UpdateSubSection(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *CourseService) DeleteSubSection(ctx context.Context, id string) error {
	err := s.courses.DeleteSubSection(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return errSubSectionNotFound
	}
	return err
}

// mergeDuration rebuilds a "{duration} {unit}" label, keeping whichever
// half of current was not supplied.
func mergeDuration(current, duration, unit string) string {
	if duration == "" && unit == "" {
		return current
	}
	oldDuration, oldUnit, _ := strings.Cut(current, " ")
	return domain.DurationTime(firstNonEmpty(duration, oldDuration), firstNonEmpty(unit, oldUnit))
}
