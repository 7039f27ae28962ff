package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse writes the standard success envelope.
func SuccessResponse(ctx *gin.Context, kind string, data interface{}, count int) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"type":   kind,
		"count":  count,
		"data":   data,
	})
}

// ErrorResponse writes the standard error envelope.
func ErrorResponse(ctx *gin.Context, status int, code string, message string) {
	ctx.JSON(status, gin.H{
		"status":  "error",
		"code":    code,
		"message": message,
	})
}
