package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a successful response in the uniform envelope.
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a failure response in the uniform envelope. The underlying
// error is included for callers; internal details are mapped away before this
// point by the boundary layer.
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}
