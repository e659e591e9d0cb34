package handlers

import (
	"jobmarket_backend/internal/services"
	"jobmarket_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// AppHandlers holds every HTTP handler in the application.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	LookupHandler      *LookupHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		AuthHandler:        NewAuthHandler(base, sc.AuthService),
		UserHandler:        NewUserHandler(base, sc.UserService, sc.JobService, sc.ApplicationService),
		JobHandler:         NewJobHandler(base, sc.JobService, sc.ApplicationService),
		ApplicationHandler: NewApplicationHandler(base, sc.ApplicationService),
		LookupHandler:      NewLookupHandler(base, sc.CategoryService, sc.SkillService, sc.PaymentTypeService),
	}
}

// RegisterRoutes mounts every handler under the shared /api group.
func (h *AppHandlers) RegisterRoutes(rg *gin.RouterGroup) {
	h.AuthHandler.RegisterRoutes(rg)
	h.UserHandler.RegisterRoutes(rg)
	h.JobHandler.RegisterRoutes(rg)
	h.ApplicationHandler.RegisterRoutes(rg)
	h.LookupHandler.RegisterRoutes(rg)
}
