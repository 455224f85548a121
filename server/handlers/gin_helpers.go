package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pricebook/server/middleware"
)

// GinHandlerFunc adapts an http.HandlerFunc to a gin.HandlerFunc.
func GinHandlerFunc(handler http.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		handler(c.Writer, c.Request)
	}
}

// SendJSONResponse sends a JSON response through the Gin context.
func SendJSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// SendJSONError sends a JSON error through the Gin context and logs it.
func SendJSONError(c *gin.Context, statusCode int, message string) {
	reqID := middleware.GetRequestIDFromGin(c)

	slog.Error("Gin HTTP error",
		"error", message,
		"status_code", statusCode,
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	c.JSON(statusCode, gin.H{
		"error":   true,
		"message": message,
	})
}
