package discount

import (
	"net/http"
	"strconv"

	"resort-backend/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/discounts/validate", h.Validate)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	discounts := admin.Group("/discounts")
	{
		discounts.GET("", h.List)
		discounts.POST("", h.Create)
		discounts.GET("/:id", h.Get)
		discounts.PUT("/:id", h.Update)
		discounts.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid discount data")
		case ErrCodeExists:
			response.Error(c, http.StatusConflict, "CODE_EXISTS", "Discount code already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create discount")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"discount": d})
}

func (h *Handler) List(c *gin.Context) {
	ds, err := h.service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list discounts")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"discounts": ds})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid discount id")
		return
	}

	d, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Discount not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load discount")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"discount": d})
}

func (h *Handler) Validate(c *gin.Context) {
	code := c.Query("code")
	amount, err := strconv.ParseFloat(c.DefaultQuery("amount", "0"), 64)
	if code == "" || err != nil || amount <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Query params code and amount are required")
		return
	}

	d, discounted, err := h.service.Validate(c.Request.Context(), code, amount)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "DISCOUNT_INVALID", "Discount code is not valid")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to validate discount")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"code":              d.Code,
		"discount_type":     d.DiscountType,
		"value":             d.Value,
		"original_amount":   amount,
		"discounted_amount": discounted,
	})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid discount id")
		return
	}

	var req UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Discount not found")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid discount data")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update discount")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"discount": d})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid discount id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Discount not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete discount")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
