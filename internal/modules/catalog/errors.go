package catalog

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("record not found")
	ErrResortHasRooms   = errors.New("resort still has rooms")
	ErrTypeHasRooms     = errors.New("room type is still in use")
	ErrRoomHasBookings  = errors.New("room has booking history")
	ErrUnknownReference = errors.New("resort or room type does not exist")
)
