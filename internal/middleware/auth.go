package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dance-school/internal/auth"
	"github.com/BruksfildServices01/dance-school/internal/httperr"
	"github.com/BruksfildServices01/dance-school/internal/models"
)

const ContextUser = "currentUser"

// UserLookup resolves a token subject to its user.
type UserLookup interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthMiddleware requires a valid bearer token for an active user and
// stores that user under ContextUser.
func AuthMiddleware(tokens *auth.TokenIssuer, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Not authenticated.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Unauthorized(c, "invalid_authorization_header", "Not authenticated.")
			return
		}

		claims, err := tokens.Validate(strings.TrimSpace(parts[1]))
		if err != nil {
			code := "invalid_token"
			if errors.Is(err, auth.ErrTokenExpired) {
				code = "token_expired"
			}
			httperr.Unauthorized(c, code, "Could not validate credentials.")
			return
		}

		user, err := users.GetUserByEmail(c.Request.Context(), claims.Subject)
		if err != nil || !user.IsActive {
			httperr.Unauthorized(c, "invalid_token", "Could not validate credentials.")
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			httperr.Unauthorized(c, "missing_authorization_header", "Not authenticated.")
			return
		}
		if !user.IsAdmin {
			httperr.Forbidden(c, "not_enough_permissions", "Not enough permissions.")
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}
