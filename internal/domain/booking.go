package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCancelled  BookingStatus = "cancelled"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCompleted  BookingStatus = "completed"
)

type Booking struct {
	ID          int64         `json:"id"`
	BookingCode string        `json:"booking_code" gorm:"uniqueIndex;size:32"`
	UserID      int64         `json:"user_id" validate:"required"`
	RoomID      int64         `json:"room_id" validate:"required"`
	CheckIn     time.Time     `json:"check_in" validate:"required"`
	CheckOut    time.Time     `json:"check_out" validate:"required"`
	NightlyRate float64       `json:"nightly_rate" validate:"gt=0"`
	TotalAmount float64       `json:"total_amount"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// RoomStatusFor maps a booking transition to the room status it implies.
// The bool is false for transitions with no room side effect.
func RoomStatusFor(s BookingStatus) (RoomStatus, bool) {
	switch s {
	case BookingConfirmed:
		return RoomReserved, true
	case BookingCancelled:
		return RoomAvailable, true
	case BookingCheckedIn:
		return RoomOccupied, true
	case BookingCheckedOut:
		return RoomAvailable, true
	default:
		return "", false
	}
}
