package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/disruptive-studio/content-platform/internal/core/domain"
)

// Authorize admits the request only when the authenticated role permits the
// given operation class. Must run after Auth has attached a verified role;
// a missing or unrecognized role is denied.
func Authorize(op domain.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !domain.Allowed(domain.Role(role), op) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
