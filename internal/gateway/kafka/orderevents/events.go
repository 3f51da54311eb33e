package orderevents

import "time"

const (
	kindOrderStatusChanged     = "order_status_changed"
	kindStockMatched           = "stock_matched"
	kindDeliveryRequestChanged = "delivery_request_changed"
)

// envelope — общая обертка событий в топике, тип события в поле kind.
type envelope struct {
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
}

type orderStatusChangedEvent struct {
	envelope

	OrderID     int64   `json:"order_id"`
	OrderNumber string  `json:"order_number"`
	Status      string  `json:"status"`
	VIN         *string `json:"vin,omitempty"`
	UserID      string  `json:"user_id"`
}

type stockMatchedEvent struct {
	envelope

	OrderID        int64  `json:"order_id"`
	OrderNumber    string `json:"order_number"`
	StockVehicleID int64  `json:"stock_vehicle_id"`
	VIN            string `json:"vin"`
	UserID         string `json:"user_id"`
}

type deliveryRequestChangedEvent struct {
	envelope

	DeliveryRequestID int64  `json:"delivery_request_id"`
	OrderID           int64  `json:"order_id"`
	OrderNumber       string `json:"order_number"`
	Status            string `json:"status"`
	UserID            string `json:"user_id"`
}
