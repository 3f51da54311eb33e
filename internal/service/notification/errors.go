package notification

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidNotificationID = errors.New("invalid notification id")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidType           = errors.New("invalid notification type")
	ErrInvalidPriority       = errors.New("invalid priority")

	ErrNotificationNotFound = errors.New("notification not found")
)
