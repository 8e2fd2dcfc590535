package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawantalekar/briefly/internal/core/ports"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// Create adds a category. Admin only; enforced by the route middleware.
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.categoryService.Create(c.Request().Context(), ports.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, okMsg("Category created successfully", category))
}

// List returns all categories, alphabetically.
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(categories))
}

func (h *CategoryHandler) GetByID(c echo.Context) error {
	category, err := h.categoryService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(category))
}

// Update changes a category. Admin only.
func (h *CategoryHandler) Update(c echo.Context) error {
	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.categoryService.Update(c.Request().Context(), c.Param("id"), ports.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okMsg("Category updated successfully", category))
}

// Delete removes a category. Admin only.
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.categoryService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okMsg("Category deleted successfully", nil))
}
