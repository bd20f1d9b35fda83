package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

type QuizHandler struct {
	service ports.QuizService
}

func NewQuizHandler(service ports.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

type choiceRequest struct {
	Title           string `json:"title" validate:"required"`
	CorrectOptionID string `json:"correctOptionId" validate:"required"`
	Option1         string `json:"option1" validate:"required"`
	Option2         string `json:"option2" validate:"required"`
	Option3         string `json:"option3" validate:"required"`
	Option4         string `json:"option4" validate:"required"`
}

func (r choiceRequest) input() ports.ChoiceInput {
	return ports.ChoiceInput{
		Title:           r.Title,
		CorrectOptionID: r.CorrectOptionID,
		Option1:         r.Option1,
		Option2:         r.Option2,
		Option3:         r.Option3,
		Option4:         r.Option4,
	}
}

type quizRequest struct {
	choiceRequest
	Duration int `json:"duration" validate:"required"`
	TopicID  int `json:"topicId" validate:"required"`
}

// quizPatch is quizRequest without presence rules, for partial updates.
type quizPatch struct {
	Title           string `json:"title"`
	CorrectOptionID string `json:"correctOptionId"`
	Option1         string `json:"option1"`
	Option2         string `json:"option2"`
	Option3         string `json:"option3"`
	Option4         string `json:"option4"`
	Duration        int    `json:"duration"`
	TopicID         int    `json:"topicId"`
}

// @Summary      Create a quiz
// @Tags         quiz
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      quizRequest  true  "Quiz"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  messageResponse
// @Router       /api/quiz/create [post]
func (h *QuizHandler) Create(c echo.Context) error {
	var req quizRequest
	if err := bindValid(c, &req, "Please add all fields"); err != nil {
		return err
	}
	quiz, err := h.service.CreateQuiz(c.Request().Context(), ports.QuizInput{
		ChoiceInput: req.input(),
		Duration:    req.Duration,
		TopicID:     req.TopicID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dataResponse{Success: true, Message: "Successfully created Quiz", Data: quiz})
}

// @Summary      List quizzes of a topic
// @Tags         quiz
// @Security     BearerAuth
// @Produce      json
// @Param        topicId  path      int  true  "Topic ID"
// @Success      200      {object}  dataResponse
// @Failure      404      {object}  messageResponse
// @Router       /api/quiz/get-quiz/{topicId} [get]
func (h *QuizHandler) ListByTopic(c echo.Context) error {
	topicID, err := intParam(c, "topicId", "Invalid topic id")
	if err != nil {
		return err
	}
	quizzes, err := h.service.ListQuizzes(c.Request().Context(), topicID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: quizzes})
}

// @Summary      Update a quiz
// @Tags         quiz
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        quizId  path      int        true  "Quiz ID"
// @Param        body    body      quizPatch  true  "Fields to change"
// @Success      200     {object}  dataResponse
// @Failure      404     {object}  messageResponse
// @Router       /api/quiz/update/{quizId} [put]
func (h *QuizHandler) Update(c echo.Context) error {
	id, err := intParam(c, "quizId", "Invalid quiz id")
	if err != nil {
		return err
	}
	var req quizPatch
	if err := c.Bind(&req); err != nil {
		return domain.Wrap(domain.KindValidation, err, "invalid payload")
	}
	quiz, err := h.service.UpdateQuiz(c.Request().Context(), id, ports.QuizInput{
		ChoiceInput: ports.ChoiceInput{
			Title:           req.Title,
			CorrectOptionID: req.CorrectOptionID,
			Option1:         req.Option1,
			Option2:         req.Option2,
			Option3:         req.Option3,
			Option4:         req.Option4,
		},
		Duration: req.Duration,
		TopicID:  req.TopicID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Message: "Quiz updated successfully", Data: quiz})
}

// @Summary      Delete a quiz
// @Tags         quiz
// @Security     BearerAuth
// @Produce      json
// @Param        quizId  path      int  true  "Quiz ID"
// @Success      200     {object}  messageResponse
// @Failure      404     {object}  messageResponse
// @Router       /api/quiz/delete/{quizId} [delete]
func (h *QuizHandler) Delete(c echo.Context) error {
	id, err := intParam(c, "quizId", "Invalid quiz id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteQuiz(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: fmt.Sprintf("Quiz with ID %d deleted successfully", id),
	})
}
