package dto

import "time"

type OrderCreate struct {
	OrderNumber     string  `json:"order_number"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	Model           string  `json:"model"`
	Trim            string  `json:"trim"`
	Color           string  `json:"color"`
	OrderValue      float64 `json:"order_value"`
	OrderDate       *string `json:"order_date,omitempty"`
	CurrentLocation *string `json:"current_location,omitempty"`
}

type Order struct {
	ID              int64      `json:"id"`
	OrderNumber     string     `json:"order_number"`
	CustomerName    string     `json:"customer_name"`
	CustomerEmail   string     `json:"customer_email"`
	Model           string     `json:"model"`
	Trim            string     `json:"trim"`
	Color           string     `json:"color"`
	OrderValue      float64    `json:"order_value"`
	Status          string     `json:"status"`
	VIN             *string    `json:"vin,omitempty"`
	BuildDate       *time.Time `json:"build_date,omitempty"`
	DeliveryDate    *time.Time `json:"delivery_date,omitempty"`
	CurrentLocation *string    `json:"current_location,omitempty"`
	OrderDate       time.Time  `json:"order_date"`
	UserID          string     `json:"user_id"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type OrderStatusUpdate struct {
	Status string `json:"status"`
}
