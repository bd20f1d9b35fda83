package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

// CourseHandler serves courses and the sections and subsections under them.
type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

type coursesResponse struct {
	Data []domain.Course `json:"data"`
}

// sectionRequest accepts duration either as a JSON number or a string.
type sectionRequest struct {
	Title        string      `json:"title"`
	Duration     json.Number `json:"duration"`
	DurationType string      `json:"durationType"`
}

func courseForm(c echo.Context) ports.CourseInput {
	return ports.CourseInput{
		Title:        c.FormValue("title"),
		Description:  c.FormValue("description"),
		Price:        c.FormValue("price"),
		Duration:     c.FormValue("duration"),
		DurationType: c.FormValue("durationType"),
	}
}

// ── Courses ───────────────────────────────────────────────────────────────────

// @Summary      List courses with their sections
// @Tags         course
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  coursesResponse
// @Router       /api/course/get-all-Course [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.service.ListCourses(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, coursesResponse{Data: courses})
}

// @Summary      Get a course with its sections
// @Tags         course
// @Security     BearerAuth
// @Produce      json
// @Param        courseId  path      string  true  "Course ID"
// @Success      200       {object}  dataResponse
// @Failure      404       {object}  messageResponse
// @Router       /api/course/{courseId} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	course, err := h.service.GetCourse(c.Request().Context(), c.Param("courseId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: course})
}

// Create handles POST /api/course/create?categoryId=.
//
// @Summary      Create a course
// @Tags         course
// @Security     BearerAuth
// @Accept       mpfd
// @Produce      json
// @Param        categoryId    query     string  true  "Category ID"
// @Param        title         formData  string  true  "Title"
// @Param        description   formData  string  true  "Description"
// @Param        price         formData  int     true  "Price"
// @Param        duration      formData  string  true  "Duration"
// @Param        durationType  formData  string  true  "Duration unit"
// @Param        thumbnail     formData  file    true  "Thumbnail"
// @Success      201           {object}  dataResponse
// @Failure      400           {object}  messageResponse
// @Router       /api/course/create [post]
func (h *CourseHandler) Create(c echo.Context) error {
	thumb, err := formFile(c, "thumbnail", imageMedia)
	if err != nil {
		return err
	}
	defer closeUpload(thumb)

	in := courseForm(c)
	in.CategoryID = c.QueryParam("categoryId")
	in.Thumbnail = thumb
	course, err := h.service.CreateCourse(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dataResponse{Success: true, Message: "Successfully created Course", Data: course})
}

// @Summary      Update a course
// @Tags         course
// @Security     BearerAuth
// @Accept       mpfd
// @Produce      json
// @Param        courseId  path      string  true  "Course ID"
// @Success      200       {object}  dataResponse
// @Failure      400       {object}  messageResponse
// @Failure      404       {object}  messageResponse
// @Router       /api/course/update/{courseId} [put]
func (h *CourseHandler) Update(c echo.Context) error {
	thumb, err := formFile(c, "thumbnail", imageMedia)
	if err != nil {
		return err
	}
	defer closeUpload(thumb)

	in := courseForm(c)
	in.CategoryID = c.FormValue("categoryId")
	in.Thumbnail = thumb
	course, err := h.service.UpdateCourse(c.Request().Context(), c.Param("courseId"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Message: "Course updated successfully", Data: course})
}

// @Summary      Delete a course
// @Tags         course
// @Security     BearerAuth
// @Produce      json
// @Param        courseId  path      string  true  "Course ID"
// @Success      200       {object}  messageResponse
// @Failure      404       {object}  messageResponse
// @Router       /api/course/delete/{courseId} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	id := c.Param("courseId")
	if err := h.service.DeleteCourse(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: fmt.Sprintf("Course with ID %s deleted successfully", id),
	})
}

// ── Sections ──────────────────────────────────────────────────────────────────

func bindSection(c echo.Context) (ports.SectionInput, error) {
	var req sectionRequest
	if err := c.Bind(&req); err != nil {
		return ports.SectionInput{}, domain.Wrap(domain.KindValidation, err, "invalid payload")
	}
	return ports.SectionInput{
		Title:        req.Title,
		Duration:     req.Duration.String(),
		DurationType: req.DurationType,
	}, nil
}

// @Summary      Create a section
// @Tags         section
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        courseId  query     string          true  "Course ID"
// @Param        body      body      sectionRequest  true  "Section"
// @Success      201       {object}  dataResponse
// @Failure      400       {object}  messageResponse
// @Router       /api/section/create [post]
func (h *CourseHandler) CreateSection(c echo.Context) error {
	in, err := bindSection(c)
	if err != nil {
		return err
	}
	section, err := h.service.CreateSection(c.Request().Context(), c.QueryParam("courseId"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dataResponse{Success: true, Message: "Successfully created Section", Data: section})
}

// @Summary      Update a section
// @Tags         section
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        sectionId  path      string          true  "Section ID"
// @Param        body       body      sectionRequest  true  "Section"
// @Success      200        {object}  dataResponse
// @Failure      404        {object}  messageResponse
// @Router       /api/section/update/{sectionId} [put]
func (h *CourseHandler) UpdateSection(c echo.Context) error {
	in, err := bindSection(c)
	if err != nil {
		return err
	}
	section, err := h.service.UpdateSection(c.Request().Context(), c.Param("sectionId"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Message: "Section updated successfully", Data: section})
}

// @Summary      Delete a section
// @Tags         section
// @Security     BearerAuth
// @Produce      json
// @Param        sectionId  path      string  true  "Section ID"
// @Success      200        {object}  messageResponse
// @Failure      404        {object}  messageResponse
// @Router       /api/section/delete/{sectionId} [delete]
func (h *CourseHandler) DeleteSection(c echo.Context) error {
	id := c.Param("sectionId")
	if err := h.service.DeleteSection(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: fmt.Sprintf("Section with ID %s deleted successfully", id),
	})
}

// ── Subsections ───────────────────────────────────────────────────────────────

func subSectionForm(c echo.Context) (ports.SectionInput, error) {
	video, err := formFile(c, "video", videoMedia)
	if err != nil {
		return ports.SectionInput{}, err
	}
	return ports.SectionInput{
		Title:        c.FormValue("title"),
		Duration:     c.FormValue("duration"),
		DurationType: c.FormValue("durationType"),
		Video:        video,
	}, nil
}

// CreateSubSection handles POST /api/subsection/create?sectionId= with a video.
//
// @Summary      Create a subsection
// @Tags         subsection
// @Security     BearerAuth
// @Accept       mpfd
// @Produce      json
// @Param        sectionId     query     string  true  "Section ID"
// @Param        title         formData  string  true  "Title"
// @Param        duration      formData  string  true  "Duration"
// @Param        durationType  formData  string  true  "Duration unit"
// @Param        video         formData  file    true  "Video"
// @Success      201           {object}  dataResponse
// @Failure      400           {object}  messageResponse
// @Router       /api/subsection/create [post]
func (h *CourseHandler) CreateSubSection(c echo.Context) error {
	in, err := subSectionForm(c)
	if err != nil {
		return err
	}
	defer closeUpload(in.Video)

	sub, err := h.service.CreateSubSection(c.Request().Context(), c.QueryParam("sectionId"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dataResponse{Success: true, Message: "Successfully created SubSection", Data: sub})
}

// @Summary      Update a subsection
// @Tags         subsection
// @Security     BearerAuth
// @Accept       mpfd
// @Produce      json
// @Param        subSectionId  path  string  true  "Subsection ID"
// @Success      200           {object}  dataResponse
// @Failure      404           {object}  messageResponse
// @Router       /api/subsection/update/{subSectionId} [put]
func (h *CourseHandler) UpdateSubSection(c echo.Context) error {
	in, err := subSectionForm(c)
	if err != nil {
		return err
	}
	defer closeUpload(in.Video)

	sub, err := h.service.UpdateSubSection(c.Request().Context(), c.Param("subSectionId"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Message: "SubSection updated successfully", Data: sub})
}

// @Summary      Delete a subsection
// @Tags         subsection
// @Security     BearerAuth
// @Produce      json
// @Param        subSectionId  path      string  true  "Subsection ID"
// @Success      200           {object}  messageResponse
// @Failure      404           {object}  messageResponse
// @Router       /api/subsection/delete/{subSectionId} [delete]
func (h *CourseHandler) DeleteSubSection(c echo.Context) error {
	id := c.Param("subSectionId")
	if err := h.service.DeleteSubSection(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: fmt.Sprintf("SubSection with ID %s deleted successfully", id),
	})
}
