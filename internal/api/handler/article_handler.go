package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

type ArticleHandler struct {
	service ports.ArticleService
}

func NewArticleHandler(service ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

type articlesResponse struct {
	Success  bool                    `json:"success"`
	Articles []domain.ArticleSummary `json:"articles"`
}

type articleResponse struct {
	TotalLike    int             `json:"totalLike"`
	TotalComment int             `json:"totalComment"`
	Article      *domain.Article `json:"Article"`
}

type createdArticleResponse struct {
	Message string          `json:"message"`
	Data    *domain.Article `json:"data"`
}

func articleForm(c echo.Context) ports.ArticleInput {
	return ports.ArticleInput{
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
		TopicID: c.FormValue("topicId"),
		Tag:     c.FormValue("tag"),
	}
}

// Create handles POST /api/article/create.
//
// @Summary      Create an article
// @Tags         article
// @Security     BearerAuth
// @Accept       mpfd
// @Produce      json
// @Param        title         formData  string  true  "Title"
// @Param        content       formData  string  true  "Body"
// @Param        topicId       formData  int     true  "Topic ID"
// @Param        tag           formData  string  true  "Tag"
// @Param        articleImage  formData  file    true  "Image"
// @Success      201           {object}  createdArticleResponse
// @Failure      400           {object}  messageResponse
// @Failure      404           {object}  messageResponse
// @Router       /api/article/create [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	image, err := formFile(c, "articleImage", imageMedia)
	if err != nil {
		return err
	}
	defer closeUpload(image)

	in := articleForm(c)
	in.Image = image
	article, err := h.service.CreateArticle(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdArticleResponse{Message: "Successfully created Article", Data: article})
}

// ListByTopic returns the articles of a topic with like and comment totals.
//
// @Summary      List articles of a topic
// @Tags         article
// @Security     BearerAuth
// @Produce      json
// @Param        topicId  path      int  true  "Topic ID"
// @Success      200      {object}  articlesResponse
// @Router       /api/article/get-all-article/{topicId} [get]
func (h *ArticleHandler) ListByTopic(c echo.Context) error {
	topicID, err := intParam(c, "topicId", "Invalid topicId provided")
	if err != nil {
		return err
	}
	articles, err := h.service.ListArticles(c.Request().Context(), topicID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articlesResponse{Success: true, Articles: articles})
}

// @Summary      Get an article
// @Tags         article
// @Security     BearerAuth
// @Produce      json
// @Param        articleId  path      int  true  "Article ID"
// @Success      200        {object}  articleResponse
// @Failure      404        {object}  messageResponse
// @Router       /api/article/get-article/{articleId} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	id, err := intParam(c, "articleId", "Invalid article id")
	if err != nil {
		return err
	}
	summary, err := h.service.GetArticle(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articleResponse{
		TotalLike:    summary.TotalLikes,
		TotalComment: summary.TotalComments,
		Article:      &summary.Article,
	})
}

// Update applies the non-empty form fields and an optional new image.
//
// @Summary      Update an article
// @Tags         article
// @Security     BearerAuth
// @Accept       mpfd
// @Produce      json
// @Param        articleId  path  int  true  "Article ID"
// @Success      200        {object}  dataResponse
// @Failure      400        {object}  messageResponse
// @Failure      404        {object}  messageResponse
// @Router       /api/article/update/{articleId} [patch]
func (h *ArticleHandler) Update(c echo.Context) error {
	id, err := intParam(c, "articleId", "Invalid article id")
	if err != nil {
		return err
	}
	image, err := formFile(c, "articleImage", imageMedia)
	if err != nil {
		return err
	}
	defer closeUpload(image)

	in := articleForm(c)
	in.Image = image
	article, err := h.service.UpdateArticle(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Message: "Article updated successfully", Data: article})
}

// @Summary      Delete an article
// @Tags         article
// @Security     BearerAuth
// @Produce      json
// @Param        articleId  path      int  true  "Article ID"
// @Success      200        {object}  messageResponse
// @Failure      404        {object}  messageResponse
// @Router       /api/article/delete/{articleId} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	id, err := intParam(c, "articleId", "Invalid article id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteArticle(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: fmt.Sprintf("article with ID %d deleted successfully", id),
	})
}
