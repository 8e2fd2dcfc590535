package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawantalekar/briefly/internal/api/middleware"
	"github.com/pawantalekar/briefly/internal/core/domain"
	"github.com/pawantalekar/briefly/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	cookies     *SessionCookies
}

func NewAuthHandler(authService ports.AuthService, cookies *SessionCookies) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// Register creates a new user account and logs it straight in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  response
// @Failure      400   {object}  response
// @Failure      409   {object}  response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	c.SetCookie(h.cookies.Issue(result.Token))
	return c.JSON(http.StatusCreated, okMsg("User registered successfully", authResponse{
		User:  result.User,
		Token: result.Token,
	}))
}

// Login authenticates a user, sets the session cookie, and returns the token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  response
// @Failure      401   {object}  response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(h.cookies.Issue(result.Token))
	return c.JSON(http.StatusOK, okMsg("Login successful", authResponse{
		User:  result.User,
		Token: result.Token,
	}))
}

// Profile returns the authenticated user's own profile.
//
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response
// @Failure      401  {object}  response
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	claims := middleware.Identity(c)

	profile, err := h.authService.GetProfile(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(profile))
}

// Logout clears the session cookie. The token itself stays valid until its
// expiry; there is no server-side revocation.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.cookies.Clear())
	return c.JSON(http.StatusOK, okMsg("Logged out successfully", nil))
}
