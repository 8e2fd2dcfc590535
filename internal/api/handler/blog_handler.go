package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pawantalekar/briefly/internal/api/middleware"
	"github.com/pawantalekar/briefly/internal/core/domain"
	"github.com/pawantalekar/briefly/internal/core/ports"
)

type BlogHandler struct {
	blogService ports.BlogService
}

func NewBlogHandler(blogService ports.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

type createBlogRequest struct {
	Title       string `json:"title" validate:"required,min=5,max=200"`
	Content     string `json:"content" validate:"required,min=50"`
	Excerpt     string `json:"excerpt" validate:"omitempty,max=500"`
	CoverImage  string `json:"cover_image" validate:"omitempty,url"`
	CategoryID  string `json:"category_id" validate:"required"`
	IsPublished bool   `json:"is_published"`
	Position    string `json:"position" validate:"omitempty,oneof=featured top standard"`
}

type updateBlogRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=5,max=200"`
	Content     *string `json:"content" validate:"omitempty,min=50"`
	Excerpt     *string `json:"excerpt" validate:"omitempty,max=500"`
	CoverImage  *string `json:"cover_image" validate:"omitempty,url"`
	CategoryID  *string `json:"category_id"`
	IsPublished *bool   `json:"is_published"`
	Position    *string `json:"position" validate:"omitempty,oneof=featured top standard"`
}

// viewer identifies the reader for view counting: user id when logged in,
// client IP otherwise.
func viewer(c echo.Context) string {
	if claims := middleware.Identity(c); claims != nil {
		return claims.UserID
	}
	return c.RealIP()
}

// Create creates a blog post owned by the authenticated user.
//
// @Summary      Create a blog post
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        body  body      createBlogRequest  true  "Blog post"
// @Success      201   {object}  response
// @Failure      400   {object}  response
// @Failure      401   {object}  response
// @Router       /blogs [post]
func (h *BlogHandler) Create(c echo.Context) error {
	var req createBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	claims := middleware.Identity(c)
	blog, err := h.blogService.Create(c.Request().Context(), ports.CreateBlogInput{
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		CoverImage:  req.CoverImage,
		CategoryID:  req.CategoryID,
		IsPublished: req.IsPublished,
		Position:    domain.BlogPosition(req.Position),
	}, claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, okMsg("Blog created successfully", blog))
}

// List returns published posts, newest first.
//
// @Summary      List published blog posts
// @Tags         blogs
// @Produce      json
// @Param        category_id  query  string  false  "Filter by category"
// @Param        limit        query  int     false  "Page size"
// @Param        offset       query  int     false  "Page offset"
// @Success      200  {object}  response
// @Router       /blogs [get]
func (h *BlogHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	blogs, err := h.blogService.List(c.Request().Context(), ports.ListBlogsInput{
		CategoryID: c.QueryParam("category_id"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(blogs))
}

type searchResponse struct {
	Success bool           `json:"success"`
	Data    []*domain.Blog `json:"data"`
	Count   int            `json:"count"`
	Query   string         `json:"query"`
}

// Search matches published posts on title or excerpt.
//
// @Summary      Search blog posts
// @Tags         blogs
// @Produce      json
// @Param        q  query  string  true  "Search query"
// @Success      200  {object}  searchResponse
// @Failure      400  {object}  response
// @Router       /blogs/search [get]
func (h *BlogHandler) Search(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search query is required")
	}

	blogs, err := h.blogService.Search(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, searchResponse{
		Success: true,
		Data:    blogs,
		Count:   len(blogs),
		Query:   query,
	})
}

// MyBlogs lists the authenticated author's posts, drafts included.
//
// @Summary      List own blog posts
// @Tags         blogs
// @Produce      json
// @Success      200  {object}  response
// @Failure      401  {object}  response
// @Router       /blogs/my/blogs [get]
func (h *BlogHandler) MyBlogs(c echo.Context) error {
	claims := middleware.Identity(c)
	blogs, err := h.blogService.ListByAuthor(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(blogs))
}

// GetByID returns one post and records the view.
//
// @Summary      Get a blog post by id
// @Tags         blogs
// @Produce      json
// @Param        id  path  string  true  "Blog id"
// @Success      200  {object}  response
// @Failure      404  {object}  response
// @Router       /blogs/{id} [get]
func (h *BlogHandler) GetByID(c echo.Context) error {
	blog, err := h.blogService.GetByID(c.Request().Context(), c.Param("id"), viewer(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(blog))
}

// GetBySlug returns one post by slug and records the view.
//
// @Summary      Get a blog post by slug
// @Tags         blogs
// @Produce      json
// @Param        slug  path  string  true  "Blog slug"
// @Success      200  {object}  response
// @Failure      404  {object}  response
// @Router       /blogs/slug/{slug} [get]
func (h *BlogHandler) GetBySlug(c echo.Context) error {
	blog, err := h.blogService.GetBySlug(c.Request().Context(), c.Param("slug"), viewer(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(blog))
}

// Update modifies a post; only its author may do so.
//
// @Summary      Update a blog post
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "Blog id"
// @Param        body  body  updateBlogRequest  true  "Fields to change"
// @Success      200   {object}  response
// @Failure      403   {object}  response
// @Failure      404   {object}  response
// @Router       /blogs/{id} [put]
func (h *BlogHandler) Update(c echo.Context) error {
	var req updateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.UpdateBlogInput{
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		CoverImage:  req.CoverImage,
		CategoryID:  req.CategoryID,
		IsPublished: req.IsPublished,
	}
	if req.Position != nil {
		position := domain.BlogPosition(*req.Position)
		input.Position = &position
	}

	claims := middleware.Identity(c)
	blog, err := h.blogService.Update(c.Request().Context(), c.Param("id"), input, claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okMsg("Blog updated successfully", blog))
}

// Delete removes a post; only its author may do so.
//
// @Summary      Delete a blog post
// @Tags         blogs
// @Produce      json
// @Param        id  path  string  true  "Blog id"
// @Success      200  {object}  response
// @Failure      403  {object}  response
// @Failure      404  {object}  response
// @Router       /blogs/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	claims := middleware.Identity(c)
	if err := h.blogService.Delete(c.Request().Context(), c.Param("id"), claims.UserID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okMsg("Blog deleted successfully", nil))
}
