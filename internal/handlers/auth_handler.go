package handlers

import (
	"net/http"

	"jobmarket_backend/internal/middleware"
	"jobmarket_backend/internal/services"
	"jobmarket_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService *services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService *services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/validate", h.Validate)
	}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration payload"
// @Success 201 {object} dto.AuthResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Log in with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Validate reports whether the presented bearer token resolved to a live
// principal. Always 200; the body is the verdict.
func (h *AuthHandler) Validate(c *gin.Context) {
	_, ok := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, ok)
}
