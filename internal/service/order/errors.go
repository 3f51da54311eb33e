package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidOrderValue     = errors.New("invalid order value")
	ErrInvalidStatus         = errors.New("invalid status")

	ErrOrderNotFound = errors.New("order not found")
	ErrConflict      = errors.New("resource already exists")
)
