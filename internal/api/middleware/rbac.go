package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole enforces role-based access as a second stage after Auth.
// Requests without an identity get 401; authenticated requests whose role is
// not allowed get 403.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := Identity(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
			}
			if _, ok := allowed[claims.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
