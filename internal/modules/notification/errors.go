package notification

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("notification not found")
	ErrForbidden  = errors.New("notification belongs to another user")
)
