package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-sim/internal/api/models"
)

// ErrorHandler turns panics into the uniform error envelope.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		message := "an unexpected error occurred"
		switch v := recovered.(type) {
		case string:
			message = v
		case error:
			message = v.Error()
		case fmt.Stringer:
			message = v.String()
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Status:  "error",
			Message: message,
		})
		c.Abort()
	})
}
