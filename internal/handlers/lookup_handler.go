package handlers

import (
	"net/http"

	"jobmarket_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// LookupHandler serves the read-only reference catalogs.
type LookupHandler struct {
	*BaseHandler
	categoryService    *services.CategoryService
	skillService       *services.SkillService
	paymentTypeService *services.PaymentTypeService
}

func NewLookupHandler(base *BaseHandler, categoryService *services.CategoryService, skillService *services.SkillService, paymentTypeService *services.PaymentTypeService) *LookupHandler {
	return &LookupHandler{
		BaseHandler:        base,
		categoryService:    categoryService,
		skillService:       skillService,
		paymentTypeService: paymentTypeService,
	}
}

func (h *LookupHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	{
		categories.GET("/", h.ListCategories)
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategory)
	}

	rg.GET("/skills", h.ListSkills)

	paymentTypes := rg.Group("/payment-types")
	{
		paymentTypes.GET("/", h.ListPaymentTypes)
		paymentTypes.GET("", h.ListPaymentTypes)
	}
}

func (h *LookupHandler) ListCategories(c *gin.Context) {
	resp, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LookupHandler) GetCategory(c *gin.Context) {
	resp, err := h.categoryService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LookupHandler) ListSkills(c *gin.Context) {
	resp, err := h.skillService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LookupHandler) ListPaymentTypes(c *gin.Context) {
	resp, err := h.paymentTypeService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
