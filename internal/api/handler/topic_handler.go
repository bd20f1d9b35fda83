package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

type TopicHandler struct {
	service ports.TopicService
}

func NewTopicHandler(service ports.TopicService) *TopicHandler {
	return &TopicHandler{service: service}
}

type topicsResponse struct {
	Topics []domain.Topic `json:"topics"`
}

// Create handles POST /api/topic/create (multipart: name, topicImage).
//
// @Summary      Create a topic
// @Tags         topic
// @Security     BearerAuth
// @Accept       mpfd
// @Produce      json
// @Param        name        formData  string  true  "Topic name"
// @Param        topicImage  formData  file    true  "Cover image"
// @Success      201         {object}  dataResponse
// @Failure      400         {object}  messageResponse
// @Failure      409         {object}  messageResponse
// @Router       /api/topic/create [post]
func (h *TopicHandler) Create(c echo.Context) error {
	image, err := formFile(c, "topicImage", imageMedia)
	if err != nil {
		return err
	}
	defer closeUpload(image)

	topic, err := h.service.CreateTopic(c.Request().Context(), c.FormValue("name"), image)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dataResponse{Success: true, Message: "Successfully created topic", Data: topic})
}

// @Summary      List topics
// @Tags         topic
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  topicsResponse
// @Router       /api/topic/get-all-topic [get]
func (h *TopicHandler) List(c echo.Context) error {
	topics, err := h.service.ListTopics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, topicsResponse{Topics: topics})
}

// Update replaces the name and, when a new file is sent, the image.
//
// @Summary      Update a topic
// @Tags         topic
// @Security     BearerAuth
// @Accept       mpfd
// @Produce      json
// @Param        id          path      int     true   "Topic ID"
// @Param        name        formData  string  false  "Topic name"
// @Param        topicImage  formData  file    false  "Cover image"
// @Success      200         {object}  dataResponse
// @Failure      404         {object}  messageResponse
// @Router       /api/topic/update/{id} [put]
func (h *TopicHandler) Update(c echo.Context) error {
	id, err := intParam(c, "id", "Invalid topic id")
	if err != nil {
		return err
	}
	image, err := formFile(c, "topicImage", imageMedia)
	if err != nil {
		return err
	}
	defer closeUpload(image)

	topic, err := h.service.UpdateTopic(c.Request().Context(), id, c.FormValue("name"), image)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Message: "Topic updated successfully", Data: topic})
}

// @Summary      Delete a topic
// @Tags         topic
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Topic ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/topic/delete/{id} [delete]
func (h *TopicHandler) Delete(c echo.Context) error {
	id, err := intParam(c, "id", "Invalid topic id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteTopic(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: fmt.Sprintf("topic with ID %d deleted successfully", id),
	})
}
