package handlers

import (
	"net/http"

	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/services"
	"jobmarket_backend/internal/services/dto"
	"jobmarket_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService        *services.UserService
	jobService         *services.JobService
	applicationService *services.ApplicationService
}

func NewUserHandler(base *BaseHandler, userService *services.UserService, jobService *services.JobService, applicationService *services.ApplicationService) *UserHandler {
	return &UserHandler{
		BaseHandler:        base,
		userService:        userService,
		jobService:         jobService,
		applicationService: applicationService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("/profile", h.GetProfile)
		users.PUT("/profile", h.UpdateProfile)

		// Own-skill management sits above the :id routes so "skills" is
		// never captured as a user id.
		users.GET("/skills", h.ListOwnSkills)
		users.POST("/skills", h.AddSkill)
		users.PUT("/skills/:skillId", h.UpdateSkill)
		users.DELETE("/skills/:skillId", h.RemoveSkill)

		users.GET("/:id", h.GetByID)
		users.PATCH("/:id", h.UpdateByID)
		users.DELETE("/:id", h.DeleteByID)
		users.GET("/:id/skills", h.ListSkills)
		users.GET("/:id/jobs", h.ListJobs)
		users.GET("/:id/applications", h.ListApplications)
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	resp, err := h.userService.GetByID(c.Request.Context(), user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.UserUpdateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.userService.Update(c.Request.Context(), user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	resp, err := h.userService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateByID allows a user to edit only their own record.
func (h *UserHandler) UpdateByID(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}
	if user.ID != c.Param("id") {
		h.HandleServiceError(c, apperrors.ErrNotOwner)
		return
	}

	var req dto.UserUpdateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.userService.Update(c.Request.Context(), user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) DeleteByID(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}
	if user.ID != c.Param("id") {
		h.HandleServiceError(c, apperrors.ErrNotOwner)
		return
	}

	if err := h.userService.Delete(c.Request.Context(), user.ID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListJobs returns a user's jobs; only the employer themselves may look.
func (h *UserHandler) ListJobs(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}
	if user.ID != c.Param("id") || user.Role != models.UserRoleEmployer {
		h.HandleServiceError(c, apperrors.ErrNotOwner)
		return
	}

	resp, err := h.jobService.ListByCreator(c.Request.Context(), user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListApplications returns a user's applications; freelancer, self only.
func (h *UserHandler) ListApplications(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}
	if user.ID != c.Param("id") || user.Role != models.UserRoleFreelancer {
		h.HandleServiceError(c, apperrors.ErrNotOwner)
		return
	}

	resp, err := h.applicationService.ListOwn(c.Request.Context(), user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Skills

func (h *UserHandler) ListOwnSkills(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	resp, err := h.userService.ListSkills(c.Request.Context(), user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) ListSkills(c *gin.Context) {
	resp, err := h.userService.ListSkills(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) AddSkill(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.AddUserSkillRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.userService.AddSkill(c.Request.Context(), user.ID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *UserHandler) UpdateSkill(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.UpdateUserSkillRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.userService.UpdateSkill(c.Request.Context(), user.ID, c.Param("skillId"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *UserHandler) RemoveSkill(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	if err := h.userService.RemoveSkill(c.Request.Context(), user.ID, c.Param("skillId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
