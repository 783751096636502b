package contact

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("contact message not found")
)
