package matcher

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrInvalidStockID = errors.New("invalid stock vehicle id")

	ErrOrderNotFound = errors.New("order not found")
	ErrStockNotFound = errors.New("stock vehicle not found")

	// ErrStaleMatch - предусловия резервирования перестали выполняться между
	// выбором кандидата и подтверждением. Клиент должен перечитать кандидатов.
	ErrStaleMatch = errors.New("stale match")
)
