package discount

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("discount not found")
	ErrCodeExists = errors.New("discount code already exists")
)
