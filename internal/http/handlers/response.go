package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pressplay/gamestore/internal/domain"
)

// Response is the envelope returned by every mutation endpoint
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

func respondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

// respondError maps an error to the envelope. AppErrors carry their own
// status; anything else is a generic 500 so internals never leak.
func respondError(c *gin.Context, err error) {
	if appErr, ok := domain.IsAppError(err); ok {
		c.JSON(appErr.HTTPStatus, gin.H{
			"success": false,
			"message": appErr.Message,
			"code":    appErr.Code,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Something went wrong, please try again later",
		"code":    domain.ErrCodeInternal,
	})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": message,
		"code":    domain.ErrCodeValidation,
	})
}
