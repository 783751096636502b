package payment

import (
	"time"

	"resort-backend/internal/domain"
)

type CreatePaymentRequest struct {
	BookingID     int64  `json:"booking_id" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	DiscountCode  string `json:"discount_code"`
}

type RefundRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Reason string  `json:"reason"`
}

type PaymentResponse struct {
	ID              int64      `json:"id"`
	TransactionCode string     `json:"transaction_code"`
	BookingID       int64      `json:"booking_id"`
	PaymentMethod   string     `json:"payment_method"`
	Amount          float64    `json:"amount"`
	DiscountID      *int64     `json:"discount_id,omitempty"`
	Status          string     `json:"status"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	RefundAmount    *float64   `json:"refund_amount,omitempty"`
	RefundedAt      *time.Time `json:"refunded_at,omitempty"`
	RefundReason    string     `json:"refund_reason,omitempty"`
}

func toPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		TransactionCode: p.TransactionCode,
		BookingID:       p.BookingID,
		PaymentMethod:   string(p.PaymentMethod),
		Amount:          p.Amount,
		DiscountID:      p.DiscountID,
		Status:          string(p.Status),
		PaidAt:          p.PaidAt,
		RefundAmount:    p.RefundAmount,
		RefundedAt:      p.RefundedAt,
		RefundReason:    p.RefundReason,
	}
}
