package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawantalekar/briefly/internal/api/middleware"
	"github.com/pawantalekar/briefly/internal/core/ports"
)

type LikeHandler struct {
	likeService ports.LikeService
}

func NewLikeHandler(likeService ports.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

type toggleLikeRequest struct {
	BlogID string `json:"blog_id" validate:"required"`
}

// Toggle likes the post when unliked and unlikes it otherwise.
func (h *LikeHandler) Toggle(c echo.Context) error {
	var req toggleLikeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	claims := middleware.Identity(c)
	result, err := h.likeService.Toggle(c.Request().Context(), req.BlogID, claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okMsg(result.Message, result))
}

// Stats returns the like count; when the request carries a valid session it
// also reports whether that user liked the post.
func (h *LikeHandler) Stats(c echo.Context) error {
	userID := ""
	if claims := middleware.Identity(c); claims != nil {
		userID = claims.UserID
	}

	stats, err := h.likeService.Stats(c.Request().Context(), c.Param("blogId"), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(stats))
}
