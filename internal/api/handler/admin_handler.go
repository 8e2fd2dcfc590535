package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawantalekar/briefly/internal/core/ports"
)

// AdminHandler exposes the admin panel. Every route sits behind the
// ADMIN-role middleware; no further checks happen here.
type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=USER ADMIN"`
}

type updateStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type publishRequest struct {
	IsPublished *bool `json:"is_published" validate:"required"`
}

func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminService.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(stats))
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(users))
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.adminService.DeleteUser(c.Request().Context(), c.Param("userId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okMsg("User deleted successfully", nil))
}

func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.adminService.UpdateUserRole(c.Request().Context(), c.Param("userId"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okMsg("User role updated", user))
}

func (h *AdminHandler) ToggleUserStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.adminService.SetUserActive(c.Request().Context(), c.Param("userId"), *req.IsActive)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okMsg("User status updated", user))
}

func (h *AdminHandler) ListBlogs(c echo.Context) error {
	blogs, err := h.adminService.ListBlogs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(blogs))
}

func (h *AdminHandler) DeleteBlog(c echo.Context) error {
	if err := h.adminService.DeleteBlog(c.Request().Context(), c.Param("blogId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okMsg("Blog deleted successfully", nil))
}

func (h *AdminHandler) ToggleBlogPublish(c echo.Context) error {
	var req publishRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	blog, err := h.adminService.SetBlogPublished(c.Request().Context(), c.Param("blogId"), *req.IsPublished)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okMsg("Blog publish state updated", blog))
}
