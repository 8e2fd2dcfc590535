package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pawantalekar/briefly/internal/core/ports"
)

// SessionCookieName is the HttpOnly cookie carrying the session token.
const SessionCookieName = "access_token"

const identityKey = "identity"

// Auth requires a valid session token and injects the resolved identity into
// the echo context. The cookie is preferred; a Bearer header is the fallback
// for non-browser clients. Missing and invalid tokens both collapse to 401
// with deliberately non-specific messages.
func Auth(tokens ports.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			c.Set(identityKey, claims)
			return next(c)
		}
	}
}

// OptionalAuth attaches an identity when a valid token is present but lets
// anonymous requests straight through. Used on endpoints whose response is
// merely enriched by a session (like stats).
func OptionalAuth(tokens ports.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := extractToken(c); token != "" {
				if claims, err := tokens.Verify(token); err == nil {
					c.Set(identityKey, claims)
				}
			}
			return next(c)
		}
	}
}

// Identity returns the session claims attached by Auth, or nil on anonymous
// requests.
func Identity(c echo.Context) *ports.SessionClaims {
	claims, _ := c.Get(identityKey).(*ports.SessionClaims)
	return claims
}

// extractToken prefers the session cookie and falls back to a Bearer header.
func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
