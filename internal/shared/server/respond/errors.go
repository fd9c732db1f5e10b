package respond

import (
	"github.com/gin-gonic/gin"

	"quickq-backend/internal/shared/telemetry"
)

// ErrorBody is the error object every endpoint returns on failure.
type ErrorBody struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

// Error sends the standardized error payload and aborts the request.
func Error(c *gin.Context, status int, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorBody{Error: message, Success: false})
}
