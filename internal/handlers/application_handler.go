package handlers

import (
	"net/http"

	"jobmarket_backend/internal/services"
	"jobmarket_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	apps := rg.Group("/applications")
	{
		apps.GET("", h.ListOwn)
		apps.GET("/employer", h.ListForEmployer)
		apps.POST("", h.Create)
		apps.GET("/:id", h.GetByID)
		apps.PUT("/:id/status", h.UpdateStatus)
		apps.PATCH("/:id/status", h.UpdateStatus)
		apps.DELETE("/:id", h.Delete)
	}

	// Role-prefixed alias kept for older clients.
	rg.GET("/freelancer/applications", h.ListOwn)
}

// ListOwn returns the caller's applications.
func (h *ApplicationHandler) ListOwn(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.ListOwn(c.Request.Context(), user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListForEmployer returns applications to any job the caller created.
func (h *ApplicationHandler) ListForEmployer(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.ListForEmployer(c.Request.Context(), user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Apply for a job
// @Tags applications
// @Accept json
// @Produce json
// @Param request body dto.ApplicationRequest true "Application payload"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /api/applications [post]
func (h *ApplicationHandler) Create(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.ApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.applicationService.Create(c.Request.Context(), user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ApplicationHandler) GetByID(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.GetByID(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.StatusUpdateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.applicationService.UpdateStatus(c.Request.Context(), user, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	if err := h.applicationService.Delete(c.Request.Context(), user, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
