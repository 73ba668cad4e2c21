package utils

import "github.com/gin-gonic/gin"

// SuccessResponse writes the uniform success envelope.
func SuccessResponse(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"message": message,
		"data":    data,
	})
}

// ErrorResponse writes the uniform error envelope.
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"error": message,
	})
}
