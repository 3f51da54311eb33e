package stock

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStockID        = errors.New("invalid stock vehicle id")
	ErrInvalidVIN            = errors.New("invalid vin")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidYear           = errors.New("invalid year")

	ErrStockNotFound = errors.New("stock vehicle not found")
	ErrConflict      = errors.New("resource already exists")
)
