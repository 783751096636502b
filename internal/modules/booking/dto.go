package booking

import "resort-backend/internal/domain"

type CreateBookingRequest struct {
	RoomID   int64  `json:"room_id" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		BookingCode: b.BookingCode,
		RoomID:      b.RoomID,
		CheckIn:     b.CheckIn.Format(dateLayout),
		CheckOut:    b.CheckOut.Format(dateLayout),
		Nights:      nightsBetween(b.CheckIn, b.CheckOut),
		NightlyRate: b.NightlyRate,
		TotalAmount: b.TotalAmount,
		Status:      string(b.Status),
	}
}

type BookingResponse struct {
	ID          int64   `json:"id"`
	BookingCode string  `json:"booking_code"`
	RoomID      int64   `json:"room_id"`
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out"`
	Nights      int     `json:"nights"`
	NightlyRate float64 `json:"nightly_rate"`
	TotalAmount float64 `json:"total_amount"`
	Status      string  `json:"status"`
}
