package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodCard         PaymentMethod = "card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodEWallet      PaymentMethod = "e_wallet"
)

func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodCash, MethodCard, MethodBankTransfer, MethodEWallet:
		return true
	}
	return false
}

type Payment struct {
	ID              int64         `json:"id"`
	TransactionCode string        `json:"transaction_code" gorm:"uniqueIndex;size:32"`
	BookingID       int64         `json:"booking_id" validate:"required" gorm:"index"`
	UserID          int64         `json:"user_id" validate:"required"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	Amount          float64       `json:"amount"`
	DiscountID      *int64        `json:"discount_id,omitempty"`
	Status          PaymentStatus `json:"status"`
	TransactionDate time.Time     `json:"transaction_date"`
	PaidAt          *time.Time    `json:"paid_at,omitempty"`
	RefundAmount    *float64      `json:"refund_amount,omitempty"`
	RefundedAt      *time.Time    `json:"refunded_at,omitempty"`
	RefundReason    string        `json:"refund_reason,omitempty"`
}
