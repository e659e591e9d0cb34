package handlers

import (
	"jobmarket_backend/internal/logger"
	"jobmarket_backend/internal/middleware"
	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/validator"
	"jobmarket_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed (query)", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error (query)", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// Principal returns the authenticated user or writes a 401. Routes behind
// the access table always have one; this guards direct handler reuse.
func (h *BaseHandler) Principal(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		logger.CtxWarn(c.Request.Context(), "no principal on protected route",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return nil, false
	}
	return user, true
}
