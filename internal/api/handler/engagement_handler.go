package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

// EngagementHandler serves likes and comments on articles.
type EngagementHandler struct {
	service ports.EngagementService
}

func NewEngagementHandler(service ports.EngagementService) *EngagementHandler {
	return &EngagementHandler{service: service}
}

type commentRequest struct {
	ArticleID int    `json:"articleId"`
	Content   string `json:"content"`
}

// ToggleLike likes the article, or removes the caller's like if present.
//
// @Summary      Like or unlike an article
// @Tags         engagement
// @Security     BearerAuth
// @Produce      json
// @Param        articleId  path      int  true  "Article ID"
// @Success      201        {object}  dataResponse     "Liked"
// @Success      200        {object}  messageResponse  "Like removed"
// @Failure      404        {object}  messageResponse
// @Router       /api/like-dislike/{articleId} [post]
func (h *EngagementHandler) ToggleLike(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	articleID, err := intParam(c, "articleId", "Invalid article id")
	if err != nil {
		return err
	}

	res, err := h.service.ToggleLike(c.Request().Context(), claims.UserID, articleID)
	if err != nil {
		return err
	}
	if !res.Liked {
		return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Article disliked"})
	}
	return c.JSON(http.StatusCreated, dataResponse{Success: true, Message: "Article liked", Data: res.Like})
}

// @Summary      Comment on an article
// @Tags         engagement
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      commentRequest  true  "Comment"
// @Success      201   {object}  dataResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/create-comment [post]
func (h *EngagementHandler) CreateComment(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return domain.Wrap(domain.KindValidation, err, "invalid payload")
	}

	comment, err := h.service.CreateComment(c.Request().Context(), claims.UserID, req.ArticleID, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dataResponse{Success: true, Message: "Comment created", Data: comment})
}

// @Summary      List a user's comments
// @Tags         engagement
// @Security     BearerAuth
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  dataResponse
// @Failure      400     {object}  messageResponse
// @Failure      404     {object}  messageResponse
// @Router       /api/get-all/{userId} [get]
func (h *EngagementHandler) ListUserComments(c echo.Context) error {
	userID, err := intParam(c, "userId", "Invalid user ID")
	if err != nil {
		return err
	}
	comments, err := h.service.ListUserComments(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: comments})
}

// @Summary      Edit own comment
// @Tags         engagement
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        commentId  path      int             true  "Comment ID"
// @Param        body       body      commentRequest  true  "New content"
// @Success      200        {object}  dataResponse
// @Failure      403        {object}  messageResponse
// @Failure      404        {object}  messageResponse
// @Router       /api/update-comment/{commentId} [put]
func (h *EngagementHandler) UpdateComment(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	commentID, err := intParam(c, "commentId", "Invalid comment id")
	if err != nil {
		return err
	}
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return domain.Wrap(domain.KindValidation, err, "invalid payload")
	}

	comment, err := h.service.UpdateComment(c.Request().Context(), claims.UserID, commentID, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Message: "Comment updated", Data: comment})
}

// @Summary      Delete own comment
// @Tags         engagement
// @Security     BearerAuth
// @Produce      json
// @Param        commentId  path      int  true  "Comment ID"
// @Success      200        {object}  messageResponse
// @Failure      403        {object}  messageResponse
// @Failure      404        {object}  messageResponse
// @Router       /api/delete-comment/{commentId} [delete]
func (h *EngagementHandler) DeleteComment(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	commentID, err := intParam(c, "commentId", "Invalid comment id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteComment(c.Request().Context(), claims.UserID, commentID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Comment deleted"})
}
