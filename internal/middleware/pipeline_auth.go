package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fortune/internal/errors"
)

var errPipelineNotConfigured = &apperrors.AppError{
	Code:       "PIPELINE_NOT_CONFIGURED",
	Message:    "Pipeline endpoints are not configured",
	StatusCode: http.StatusServiceUnavailable,
}

// PipelineAuthMiddleware guards the market price ingestion endpoints with the
// X-API-Key header. With no key configured the endpoints are disabled.
func PipelineAuthMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			RespondError(c, errPipelineNotConfigured)
			return
		}
		key := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			RespondError(c, apperrors.ErrInvalidAPIKey)
			return
		}
		c.Next()
	}
}
