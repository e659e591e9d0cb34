package apperrors

import (
	"jobmarket_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error envelope sent to clients.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError converts any error into the JSON error envelope.
// Non-AppError values are treated as internal errors: logged with the
// underlying cause, returned to the client without it.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxError(c.Request.Context(), "server error",
			"error", appErr.Error(),
			"path", c.Request.URL.Path,
		)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
