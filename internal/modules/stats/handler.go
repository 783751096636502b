package stats

import (
	"net/http"
	"strconv"
	"time"

	"resort-backend/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	stats := admin.Group("/stats")
	{
		stats.GET("/revenue", h.Revenue)
		stats.GET("/revenue/monthly", h.MonthlyRevenue)
		stats.GET("/rooms/top", h.TopRooms)
	}
}

func (h *Handler) Revenue(c *gin.Context) {
	report, err := h.service.Revenue(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dates must be YYYY-MM-DD with end after start")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build revenue report")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"report": report})
}

func (h *Handler) MonthlyRevenue(c *gin.Context) {
	year, _ := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))

	rows, err := h.service.MonthlyRevenue(c.Request.Context(), year)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid year")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build monthly report")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"year": year, "months": rows})
}

func (h *Handler) TopRooms(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	rows, err := h.service.TopRooms(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to rank rooms")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rows})
}
