package auth

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrUserExists         = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrNotFound           = errors.New("user not found")
)
