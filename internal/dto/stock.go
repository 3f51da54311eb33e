package dto

import "time"

type StockVehicleCreate struct {
	VIN      string  `json:"vin"`
	Model    string  `json:"model"`
	Trim     string  `json:"trim"`
	Color    string  `json:"color"`
	Year     int     `json:"year"`
	Price    float64 `json:"price"`
	Location string  `json:"location"`
	Status   *string `json:"status,omitempty"`
}

type StockVehicleUpdate struct {
	ID       int64    `json:"id"`
	Model    *string  `json:"model,omitempty"`
	Trim     *string  `json:"trim,omitempty"`
	Color    *string  `json:"color,omitempty"`
	Year     *int     `json:"year,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Location *string  `json:"location,omitempty"`
	Status   *string  `json:"status,omitempty"`
}

type StockVehicle struct {
	ID        int64     `json:"id"`
	VIN       string    `json:"vin"`
	Model     string    `json:"model"`
	Trim      string    `json:"trim"`
	Color     string    `json:"color"`
	Year      int       `json:"year"`
	Price     float64   `json:"price"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StockCandidates struct {
	StockVehicleID int64   `json:"stock_vehicle_id"`
	MatchingOrders []Order `json:"matching_orders"`
}

type StockReserve struct {
	OrderID        int64 `json:"order_id"`
	StockVehicleID int64 `json:"stock_vehicle_id"`
}

type StockReservation struct {
	OrderID        int64     `json:"order_id"`
	OrderNumber    string    `json:"order_number"`
	StockVehicleID int64     `json:"stock_vehicle_id"`
	VIN            string    `json:"vin"`
	ReservedAt     time.Time `json:"reserved_at"`
}
