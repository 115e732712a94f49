package apierrors

import (
	"net/http"

	"loyalty-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Package-level logger that uses context for observability
var logger = observability.NewLogger()

// ErrorResponse is the JSON structure returned to API clients for errors
type ErrorResponse struct {
	Error string `json:"error"`          // User-friendly error message
	Code  string `json:"code,omitempty"` // Machine-readable error code
}

// RespondWithError converts err to an APIError and sends the sanitized
// response. Processors have already logged the detailed error; this log
// entry carries the request id for correlation.
//
//	if err != nil {
//	    apierrors.RespondWithError(c, err)
//	    return
//	}
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	respond(c, MapError(err))
}

// RespondWithValidationError is used when c.ShouldBindJSON or a similar
// binding function fails.
func RespondWithValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	logger.InfoWithError(c.Request.Context(), "request validation failed", err)
	respond(c, ValidationError(err))
}

// Abort sends the error response and stops the handler chain. Middleware
// uses it.
func Abort(c *gin.Context, err error) {
	RespondWithError(c, err)
	c.Abort()
}

func respond(c *gin.Context, apiErr *APIError) {
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "status_code", Value: apiErr.StatusCode},
		observability.Field{Key: "error_code", Value: apiErr.Code},
		observability.Field{Key: "error_message", Value: apiErr.Message},
	)
	if apiErr.StatusCode >= http.StatusInternalServerError && apiErr.Err != nil {
		logger.Error(ctx, "API error response", apiErr.Err)
	} else {
		logger.Info(ctx, "API error response")
	}

	c.JSON(apiErr.StatusCode, ErrorResponse{
		Error: apiErr.Message,
		Code:  apiErr.Code,
	})
}
