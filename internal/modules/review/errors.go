package review

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("review not found")
	ErrRoomNotFound = errors.New("room not found")
)
