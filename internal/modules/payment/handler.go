package payment

import (
	"net/http"
	"strconv"
	"time"

	"resort-backend/internal/pkg/response"
	"resort-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	payments := protected.Group("/payments")
	{
		payments.POST("", h.Pay)
		payments.GET("/my", h.MyPayments)
	}
}

func (h *Handler) RegisterStaffRoutes(staff *gin.RouterGroup) {
	payments := staff.Group("/payments")
	{
		payments.GET("", h.List)
		payments.GET("/:id", h.Get)
		payments.POST("/:id/refund", h.Refund)
	}
}

func (h *Handler) Pay(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Pay(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown payment method")
		case ErrBookingNotFound:
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "This booking belongs to another user")
		case ErrAlreadyPaid:
			response.Error(c, http.StatusConflict, "ALREADY_PAID", "Booking already has a completed payment")
		case ErrDiscountInvalid:
			response.Error(c, http.StatusBadRequest, "DISCOUNT_INVALID", "Discount code is not valid")
		case ErrDiscountExhausted:
			response.Error(c, http.StatusConflict, "DISCOUNT_EXHAUSTED", "Discount usage limit reached")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process payment")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"payment": toPaymentResponse(p)})
}

func (h *Handler) Refund(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment id")
		return
	}

	var req RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Refund(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
		case ErrNotRefundable:
			response.Error(c, http.StatusConflict, "NOT_REFUNDABLE", "Only completed payments can be refunded")
		case ErrRefundTooLarge:
			response.Error(c, http.StatusBadRequest, "REFUND_TOO_LARGE", "Refund exceeds the paid amount")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Refund amount must be positive")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to refund payment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payment": toPaymentResponse(p)})
}

func (h *Handler) MyPayments(c *gin.Context) {
	rows, err := h.service.MyPayments(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list payments")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payments": rows})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment id")
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load payment")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payment": toPaymentResponse(p)})
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	f := repository.PaymentListFilter{
		Status:        c.Query("status"),
		PaymentMethod: c.Query("payment_method"),
		Limit:         limit,
		Offset:        offset,
	}
	if from := c.Query("start_date"); from != "" {
		if to := c.Query("end_date"); to != "" {
			start, err1 := time.Parse("2006-01-02", from)
			end, err2 := time.Parse("2006-01-02", to)
			if err1 != nil || err2 != nil {
				response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dates must be YYYY-MM-DD")
				return
			}
			end = end.AddDate(0, 0, 1)
			f.StartDate = &start
			f.EndDate = &end
		}
	}

	rows, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list payments")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payments": rows})
}
