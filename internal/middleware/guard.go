package middleware

import (
	"staffnotes/internal/common"

	"github.com/labstack/echo/v4"
)

// RequireRole gates a route on the caller's role. Role violations are a 403:
// unlike tenant scoping, the resource's existence is not a secret here.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			callerRole, ok := common.GetRoleFromContext(c.Request().Context())
			if !ok {
				return common.SendUnauthorizedError(c)
			}
			if callerRole != role {
				return common.SendForbiddenError(c, "Insufficient permissions")
			}
			return next(c)
		}
	}
}
