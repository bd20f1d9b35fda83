package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type categoryRequest struct {
	Name string `json:"name" form:"name"`
}

type categoriesResponse struct {
	Success     bool                    `json:"success"`
	AllCategory []domain.CourseCategory `json:"allCategory"`
}

// @Summary      Create a course category
// @Tags         category
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      categoryRequest  true  "Category"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /api/category/create [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return domain.Wrap(domain.KindValidation, err, "invalid payload")
	}
	category, err := h.service.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dataResponse{Success: true, Message: "Successfully created Category", Data: category})
}

// @Summary      List course categories
// @Tags         category
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  categoriesResponse
// @Router       /api/category/get-all-category [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoriesResponse{Success: true, AllCategory: categories})
}

// @Summary      Rename a course category
// @Tags         category
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        categoryId  path      string           true  "Category ID"
// @Param        body        body      categoryRequest  true  "Category"
// @Success      200         {object}  dataResponse
// @Failure      404         {object}  messageResponse
// @Router       /api/category/update/{categoryId} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return domain.Wrap(domain.KindValidation, err, "invalid payload")
	}
	category, err := h.service.UpdateCategory(c.Request().Context(), c.Param("categoryId"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Message: "Category updated successfully", Data: category})
}

// @Summary      Delete a course category
// @Tags         category
// @Security     BearerAuth
// @Produce      json
// @Param        categoryId  path      string  true  "Category ID"
// @Success      200         {object}  messageResponse
// @Failure      404         {object}  messageResponse
// @Router       /api/category/delete/{categoryId} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id := c.Param("categoryId")
	if err := h.service.DeleteCategory(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: fmt.Sprintf("Category with ID %s deleted successfully", id),
	})
}
