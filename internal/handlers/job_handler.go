package handlers

import (
	"errors"
	"io"
	"net/http"

	"jobmarket_backend/internal/services"
	"jobmarket_backend/internal/services/dto"
	"jobmarket_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService         *services.JobService
	applicationService *services.ApplicationService
}

func NewJobHandler(base *BaseHandler, jobService *services.JobService, applicationService *services.ApplicationService) *JobHandler {
	return &JobHandler{
		BaseHandler:        base,
		jobService:         jobService,
		applicationService: applicationService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.Search)
		jobs.GET("/:id", h.GetByID)
		jobs.POST("", h.Create)
		jobs.PUT("/:id", h.Update)
		jobs.DELETE("/:id", h.Delete)

		jobs.GET("/:id/applications", h.ListApplications)
		jobs.POST("/:id/applications", h.Apply)
	}

	// Role-prefixed alias kept for older clients.
	rg.GET("/employer/jobs", h.ListOwn)
}

// Search godoc
// @Summary Search open jobs
// @Tags jobs
// @Produce json
// @Param location query string false "Location substring"
// @Param search query string false "Title/description substring"
// @Param type query string false "Job type"
// @Param page query int false "Page number, zero-based"
// @Param size query int false "Page size"
// @Success 200 {object} dto.PaginatedJobResponse
// @Router /api/jobs [get]
func (h *JobHandler) Search(c *gin.Context) {
	var query dto.JobSearchQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.jobService.Search(c.Request.Context(), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) GetByID(c *gin.Context) {
	resp, err := h.jobService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Create(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.JobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.jobService.Create(c.Request.Context(), user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *JobHandler) Update(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.JobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.jobService.Update(c.Request.Context(), user, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Delete(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	if err := h.jobService.Delete(c.Request.Context(), user, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListOwn returns the jobs created by the calling employer.
func (h *JobHandler) ListOwn(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	resp, err := h.jobService.ListByCreator(c.Request.Context(), user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListApplications lists a job's applications for its owner. Defaults to
// pending ones; ?status= overrides.
func (h *JobHandler) ListApplications(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	status := c.DefaultQuery("status", "pending")
	resp, err := h.applicationService.ListByJob(c.Request.Context(), user, c.Param("id"), status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Apply submits an application to the job in the path. The body message is
// optional here; the path parameter wins over any jobId in the body.
func (h *JobHandler) Apply(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}

	req := dto.ApplicationRequest{JobID: c.Param("id"), Message: body.Message}
	resp, err := h.applicationService.Create(c.Request.Context(), user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
