package payment

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrForbidden         = errors.New("booking belongs to another user")
	ErrAlreadyPaid       = errors.New("booking already has a completed payment")
	ErrDiscountInvalid   = errors.New("discount code is not valid")
	ErrDiscountExhausted = errors.New("discount usage limit reached")
	ErrNotFound          = errors.New("payment not found")
	ErrNotRefundable     = errors.New("only completed payments can be refunded")
	ErrRefundTooLarge    = errors.New("refund exceeds the paid amount")
)
