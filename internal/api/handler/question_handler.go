package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

type QuestionHandler struct {
	service ports.QuestionService
}

func NewQuestionHandler(service ports.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

type questionsResponse struct {
	Success     bool              `json:"success"`
	AllQuestion []domain.Question `json:"allQuestion"`
}

type answerRequest struct {
	CorrectOptionID string `json:"correctOptionId"`
}

// @Summary      Create a question
// @Tags         question
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      choiceRequest  true  "Question"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  messageResponse
// @Router       /api/question/create [post]
func (h *QuestionHandler) Create(c echo.Context) error {
	var req choiceRequest
	if err := bindValid(c, &req, "All fields are required"); err != nil {
		return err
	}
	q, err := h.service.CreateQuestion(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dataResponse{Success: true, Message: "Question created successfully", Data: q})
}

// @Summary      List questions
// @Tags         question
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  questionsResponse
// @Router       /api/question/get-all [get]
func (h *QuestionHandler) List(c echo.Context) error {
	questions, err := h.service.ListQuestions(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, questionsResponse{Success: true, AllQuestion: questions})
}

// @Summary      Update a question
// @Tags         question
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Question ID"
// @Param        body  body      choiceRequest  true  "Fields to change"
// @Success      200   {object}  dataResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/question/update-question/{id} [put]
func (h *QuestionHandler) Update(c echo.Context) error {
	id, err := intParam(c, "id", "Invalid question id")
	if err != nil {
		return err
	}
	var req choiceRequest
	if err := c.Bind(&req); err != nil {
		return domain.Wrap(domain.KindValidation, err, "invalid payload")
	}
	q, err := h.service.UpdateQuestion(c.Request().Context(), id, req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Message: "Question updated successfully", Data: q})
}

// @Summary      Delete a question
// @Tags         question
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Question ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/question/delete-question/{id} [delete]
func (h *QuestionHandler) Delete(c echo.Context) error {
	id, err := intParam(c, "id", "Invalid question id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteQuestion(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: fmt.Sprintf("Question with ID %d deleted successfully", id),
	})
}

// VerifyAnswer checks a submitted option against the stored answer.
//
// @Summary      Check an answer
// @Tags         question
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Question ID"
// @Param        body  body      answerRequest  true  "Chosen option"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/question/verify-answer/{id} [post]
func (h *QuestionHandler) VerifyAnswer(c echo.Context) error {
	id, err := intParam(c, "id", "Invalid question id")
	if err != nil {
		return err
	}
	var req answerRequest
	if err := c.Bind(&req); err != nil {
		return domain.Wrap(domain.KindValidation, err, "invalid payload")
	}
	if err := h.service.VerifyAnswer(c.Request().Context(), id, req.CorrectOptionID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "correct answer"})
}
