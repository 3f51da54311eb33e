package order_status_changed

// Типы событий в топике заказов, различаются по полю kind.
const (
	kindOrderStatusChanged     = "order_status_changed"
	kindStockMatched           = "stock_matched"
	kindDeliveryRequestChanged = "delivery_request_changed"
)

type envelope struct {
	Kind string `json:"kind"`
}

type orderStatusChangedEvent struct {
	OrderID     int64   `json:"order_id"`
	OrderNumber string  `json:"order_number"`
	Status      string  `json:"status"`
	VIN         *string `json:"vin,omitempty"`
	UserID      string  `json:"user_id"`
}

type stockMatchedEvent struct {
	OrderID        int64  `json:"order_id"`
	OrderNumber    string `json:"order_number"`
	StockVehicleID int64  `json:"stock_vehicle_id"`
	VIN            string `json:"vin"`
	UserID         string `json:"user_id"`
}

type deliveryRequestChangedEvent struct {
	DeliveryRequestID int64  `json:"delivery_request_id"`
	OrderID           int64  `json:"order_id"`
	OrderNumber       string `json:"order_number"`
	Status            string `json:"status"`
	UserID            string `json:"user_id"`
}
