package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/bloodlink/internal/pkg/jwt"
	"github.com/piresc/bloodlink/internal/pkg/models"
	nr "github.com/piresc/bloodlink/internal/pkg/newrelic"
	"github.com/piresc/bloodlink/internal/utils"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextUserID, claims.UserID.String())
			c.Set(ContextUserRole, models.UserRole(claims.Role))
			nr.AddTransactionAttribute(c.Request().Context(), "user.id", claims.UserID.String())

			return next(c)
		}
	}
}

// RequireRole rejects authenticated users whose role is not listed.
// It must run after JWTAuthMiddleware.
func RequireRole(roles ...models.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextUserRole).(models.UserRole)
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Insufficient role")
		}
	}
}

// GetUserID returns the authenticated user's id
func GetUserID(c echo.Context) (string, bool) {
	id, ok := c.Get(ContextUserID).(string)
	return id, ok && id != ""
}

// GetUserRole returns the authenticated user's role
func GetUserRole(c echo.Context) models.UserRole {
	role, _ := c.Get(ContextUserRole).(models.UserRole)
	return role
}
