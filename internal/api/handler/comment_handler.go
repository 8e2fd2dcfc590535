package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawantalekar/briefly/internal/api/middleware"
	"github.com/pawantalekar/briefly/internal/core/ports"
)

type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type createCommentRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=1000"`
	BlogID   string `json:"blog_id" validate:"required"`
	ParentID string `json:"parent_id"`
}

type updateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

// Create posts a comment (or reply, when parent_id is set).
func (h *CommentHandler) Create(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	claims := middleware.Identity(c)
	comment, err := h.commentService.Create(c.Request().Context(), ports.CreateCommentInput{
		Content:  req.Content,
		BlogID:   req.BlogID,
		ParentID: req.ParentID,
	}, claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, okMsg("Comment created successfully", comment))
}

// ListByBlog returns all comments on a post, oldest first.
func (h *CommentHandler) ListByBlog(c echo.Context) error {
	comments, err := h.commentService.ListByBlog(c.Request().Context(), c.Param("blogId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(comments))
}

// Update edits a comment; only its author may do so.
func (h *CommentHandler) Update(c echo.Context) error {
	var req updateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	claims := middleware.Identity(c)
	comment, err := h.commentService.Update(c.Request().Context(), c.Param("id"), req.Content, claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okMsg("Comment updated successfully", comment))
}

// Delete removes a comment; only its author may do so.
func (h *CommentHandler) Delete(c echo.Context) error {
	claims := middleware.Identity(c)
	if err := h.commentService.Delete(c.Request().Context(), c.Param("id"), claims.UserID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okMsg("Comment deleted successfully", nil))
}
