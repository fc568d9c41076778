// Package middleware holds the API-only echo middleware: authentication and error mapping.
package middleware

import (
	"strings"

	"pricealert/internal/delivery/api/response"
	"pricealert/internal/domain/entity"
	"pricealert/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	keyUserID = "userID"
	keyRoles  = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(keyUserID, claims.UserID)
		c.Set(keyRoles, entity.RolesFromStrings(claims.Roles))

		return next(c)
	}
}

// RequireRole rejects callers without role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !HasRole(c, role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+role.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated caller.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(keyUserID).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

// HasRole reports whether the authenticated caller carries role.
func HasRole(c echo.Context, role entity.Role) bool {
	roles, ok := c.Get(keyRoles).(entity.Roles)

	return ok && roles.Contains(role)
}
