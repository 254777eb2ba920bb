package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pressplay/gamestore/internal/domain"
	"github.com/pressplay/gamestore/internal/infrastructure/auth"
)

// Context keys set by the JWT middleware
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextIsAdmin  = "is_admin"
)

// JWTMiddleware creates JWT authentication middleware. Handlers behind it
// read the caller's identity from the request context, never from ambient
// state.
func JWTMiddleware(jwtService auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, domain.NewErrorResponse(
				domain.NewAppError(domain.ErrCodeTokenMissing, "Not logged in", http.StatusUnauthorized, nil)))
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, domain.NewErrorResponse(
				domain.NewAppError(domain.ErrCodeTokenInvalid, "Invalid authorization header format", http.StatusUnauthorized, nil)))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, domain.NewErrorResponse(
				domain.NewAppError(domain.ErrCodeTokenInvalid, "Invalid token", http.StatusUnauthorized, err)))
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextIsAdmin, claims.Admin)
		c.Next()
	}
}

// UserID extracts the authenticated user's ID from the request context
func UserID(c *gin.Context) int64 {
	return c.GetInt64(ContextUserID)
}

// IsAdmin extracts the admin flag from the request context
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ContextIsAdmin)
}
