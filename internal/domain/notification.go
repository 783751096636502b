package domain

import "time"

type NotificationType string

const (
	NotifSystem    NotificationType = "system"
	NotifBooking   NotificationType = "booking"
	NotifPayment   NotificationType = "payment"
	NotifPromotion NotificationType = "promotion"
)

// Notification with a nil UserID is a broadcast visible to everyone.
type Notification struct {
	ID        int64            `json:"id"`
	UserID    *int64           `json:"user_id,omitempty"`
	Title     string           `json:"title" validate:"required"`
	Content   string           `json:"content" validate:"required" gorm:"type:text"`
	Type      NotificationType `json:"type"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
