package middleware

import (
	"context"
	"strings"

	"staffnotes/internal/common"
	"staffnotes/internal/services"

	"github.com/labstack/echo/v4"
)

// Authenticate validates the bearer token, resolves the user behind its
// subject and stores user id, company id and role in the request context.
// Every failure - missing header, malformed or expired token, vanished user -
// surfaces as the same generic 401 so the cause is never leaked to the caller.
func Authenticate(authSvc services.AuthService, userSvc services.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return common.SendUnauthorizedError(c)
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return common.SendUnauthorizedError(c)
			}

			userID, err := authSvc.Validate(tokenString)
			if err != nil {
				return common.SendUnauthorizedError(c)
			}

			// The token only proves the subject id; the identity itself is
			// always loaded fresh, never taken from any caller-supplied claim.
			user, err := userSvc.Resolve(c.Request().Context(), userID)
			if err != nil {
				return common.SendUnauthorizedError(c)
			}

			ctx := context.WithValue(c.Request().Context(), common.UserIDKey, user.ID)
			ctx = context.WithValue(ctx, common.CompanyIDKey, user.CompanyID)
			ctx = context.WithValue(ctx, common.RoleKey, user.Role)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
