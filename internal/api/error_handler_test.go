package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pawantalekar/briefly/internal/core/domain"
)

func renderError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrInvalidToken, http.StatusUnauthorized, "Invalid or expired token"},
		{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{domain.ErrAccountDisabled, http.StatusForbidden, "account is deactivated"},
		{domain.ErrUserExists, http.StatusConflict, "user with this email already exists"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{domain.ErrBlogNotFound, http.StatusNotFound, "blog not found"},
		{domain.ErrCommentNotFound, http.StatusNotFound, "comment not found"},
		{domain.ErrCategoryNotFound, http.StatusNotFound, "category not found"},
		{domain.ErrInvalidRole, http.StatusBadRequest, "invalid role"},
	}

	for _, tc := range cases {
		rec := renderError(t, tc.err)
		if rec.Code != tc.wantCode {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.wantCode, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), tc.wantMsg) {
			t.Fatalf("%v: expected message %q in %s", tc.err, tc.wantMsg, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), `"success":false`) {
			t.Fatalf("%v: error envelope must carry success=false: %s", tc.err, rec.Body.String())
		}
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "No token provided"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No token provided") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestErrorHandler_UnknownErrorHidesCause(t *testing.T) {
	rec := renderError(t, errors.New("mongo: socket was unexpectedly closed"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "mongo") {
		t.Fatalf("internal details leaked: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "internal server error") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("find blog"), domain.ErrBlogNotFound)
	rec := renderError(t, wrapped)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("wrapped domain errors must still map, got %d", rec.Code)
	}
}
