package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pressplay/gamestore/internal/domain"
)

// AdminMiddleware guards the back office. It runs after JWTMiddleware and
// re-checks the admin flag against the database so a demoted or banned
// admin cannot ride out an old token.
func AdminMiddleware(userRepo domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.JSON(http.StatusForbidden, domain.NewErrorResponse(domain.NewForbiddenError("")))
			c.Abort()
			return
		}

		user, err := userRepo.GetByID(UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, domain.NewErrorResponse(
				domain.NewDatabaseError("get user", err)))
			c.Abort()
			return
		}
		if user == nil || !user.Admin || user.Banned {
			c.JSON(http.StatusForbidden, domain.NewErrorResponse(domain.NewForbiddenError("")))
			c.Abort()
			return
		}

		c.Next()
	}
}
