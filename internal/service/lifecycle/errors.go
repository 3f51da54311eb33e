package lifecycle

import "errors"

var (
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrVINNotAssigned    = errors.New("vin not assigned")
)
