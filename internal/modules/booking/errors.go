package booking

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("booking not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrForbidden        = errors.New("booking belongs to another user")
	ErrNotCancellable   = errors.New("booking can no longer be cancelled")
	ErrCancelWindow     = errors.New("cancellation window has closed")
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrDuplicateBooking = errors.New("duplicate booking code")
)
