package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns panics into a generic "failed to generate data"
// response so a rendering bug never kills the interactive session.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    "GENERATION_FAILED",
				"message": "failed to generate data",
			},
		})
		c.Abort()
	})
}
