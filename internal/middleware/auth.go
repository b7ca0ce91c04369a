// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"

	"tours-api/internal/authz"
	apperrors "tours-api/internal/errors"
	"tours-api/internal/models"
	"tours-api/internal/service"

	"github.com/gin-gonic/gin"
)

// Context keys for storing request data
const (
	CurrentUserKey = "currentUser"
)

// Protect returns a middleware that requires a valid bearer token and loads
// the authenticated user into the request context. Requests fail with 401
// when the header is absent or malformed, the token is invalid or expired,
// the user no longer exists, or the password changed after token issue.
func Protect(authService service.AuthServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			Abort(c, apperrors.ErrUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			Abort(c, apperrors.ErrUnauthorized)
			return
		}

		user, err := authService.AuthenticateToken(c.Request.Context(), parts[1])
		if err != nil {
			Abort(c, err)
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// RestrictTo returns a middleware that rejects authenticated users whose role
// is not in the allowed set. Must run after Protect.
func RestrictTo(authorizer authz.Authorizer, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetCurrentUser(c)
		if user == nil {
			Abort(c, apperrors.ErrUnauthorized)
			return
		}

		if !authorizer.Allowed(user.Role, roles...) {
			Abort(c, apperrors.ErrForbidden)
			return
		}

		c.Next()
	}
}

// GetCurrentUser retrieves the authenticated user from the context.
// Returns nil if not set.
func GetCurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
