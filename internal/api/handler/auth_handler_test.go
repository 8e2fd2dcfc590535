package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pawantalekar/briefly/internal/api/middleware"
	"github.com/pawantalekar/briefly/internal/core/domain"
	"github.com/pawantalekar/briefly/internal/core/ports"
)

type stubAuthService struct {
	registerFn   func(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error)
	loginFn      func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	getProfileFn func(ctx context.Context, userID string) (*ports.Profile, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) GetProfile(ctx context.Context, userID string) (*ports.Profile, error) {
	return s.getProfileFn(ctx, userID)
}

func newAuthTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}
	t.Fatalf("session cookie not set")
	return nil
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
			if input.Name != "Alice" || input.Email != "alice@example.com" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.AuthResult{
				User:  &domain.User{ID: "user_1", Name: input.Name, Email: input.Email, Role: domain.RoleUser},
				Token: "issued-token",
			}, nil
		},
	}
	handler := NewAuthHandler(stub, NewSessionCookies(time.Hour, false))

	c, rec := newAuthTestContext(t, `{"name":"Alice","email":"alice@example.com","password":"pass12345"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
			User  struct {
				Email string `json:"email"`
			} `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || resp.Data.Token != "issued-token" {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}
	if resp.Data.User.Email != "alice@example.com" {
		t.Fatalf("unexpected user payload: %s", rec.Body.String())
	}

	cookie := sessionCookie(t, rec)
	if cookie.Value != "issued-token" {
		t.Fatalf("cookie must carry the token, got %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{}, NewSessionCookies(time.Hour, false))

	// Password below the minimum length.
	c, _ := newAuthTestContext(t, `{"name":"Al","email":"alice@example.com","password":"short"}`)
	err := handler.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_PasswordNeverSerialized(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
			return &ports.AuthResult{
				User:  &domain.User{ID: "user_1", Email: input.Email, PasswordHash: "$2a$10$hash"},
				Token: "t",
			}, nil
		},
	}
	handler := NewAuthHandler(stub, NewSessionCookies(time.Hour, false))

	c, rec := newAuthTestContext(t, `{"name":"Alice","email":"alice@example.com","password":"pass12345"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.Contains(rec.Body.String(), "$2a$10$hash") {
		t.Fatalf("password hash leaked into the response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_SetsCookieAttributes(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return &ports.AuthResult{
				User:  &domain.User{ID: "user_1", Email: email},
				Token: "login-token",
			}, nil
		},
	}

	// Development: Lax, not Secure.
	handler := NewAuthHandler(stub, NewSessionCookies(time.Hour, false))
	c, rec := newAuthTestContext(t, `{"email":"alice@example.com","password":"pass12345"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	cookie := sessionCookie(t, rec)
	if cookie.Secure {
		t.Fatalf("dev cookie must not be Secure")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("dev cookie must be SameSite=Lax, got %v", cookie.SameSite)
	}
	if cookie.MaxAge != 3600 {
		t.Fatalf("cookie lifetime must match the session TTL, got %d", cookie.MaxAge)
	}

	// Production: None plus Secure for the cross-site frontend.
	handler = NewAuthHandler(stub, NewSessionCookies(time.Hour, true))
	c, rec = newAuthTestContext(t, `{"email":"alice@example.com","password":"pass12345"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	cookie = sessionCookie(t, rec)
	if !cookie.Secure {
		t.Fatalf("production cookie must be Secure")
	}
	if cookie.SameSite != http.SameSiteNoneMode {
		t.Fatalf("production cookie must be SameSite=None, got %v", cookie.SameSite)
	}
}

func TestAuthHandler_Login_InvalidCredentialsPassThrough(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, NewSessionCookies(time.Hour, false))

	c, _ := newAuthTestContext(t, `{"email":"alice@example.com","password":"wrongpass"}`)
	if err := handler.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to reach the error handler, got %v", err)
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	stub := &stubAuthService{
		getProfileFn: func(ctx context.Context, userID string) (*ports.Profile, error) {
			if userID != "user_1" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return &ports.Profile{ID: userID, Name: "Alice", Email: "alice@example.com"}, nil
		},
	}
	handler := NewAuthHandler(stub, NewSessionCookies(time.Hour, false))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("identity", &ports.SessionClaims{UserID: "user_1"})

	if err := handler.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "alice@example.com") {
		t.Fatalf("profile missing from response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{}, NewSessionCookies(time.Hour, false))

	c, rec := newAuthTestContext(t, "")
	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	cookie := sessionCookie(t, rec)
	if cookie.MaxAge >= 0 {
		t.Fatalf("logout must expire the cookie, got MaxAge %d", cookie.MaxAge)
	}
	if cookie.Value != "" {
		t.Fatalf("cleared cookie must carry no token")
	}
	if cookie.Path != "/" {
		t.Fatalf("cleared cookie path must match the issued cookie, got %q", cookie.Path)
	}
}
