package deliveryrequest

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRequestID      = errors.New("invalid delivery request id")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrOrderNotBuilt         = errors.New("order is not built yet")

	ErrRequestNotFound = errors.New("delivery request not found")
)
