package dto

import "time"

type DeliveryRequestCreate struct {
	OrderID             int64   `json:"order_id"`
	DeliveryAddress     string  `json:"delivery_address"`
	ContactName         string  `json:"contact_name"`
	ContactPhone        string  `json:"contact_phone"`
	PreferredDate       string  `json:"preferred_date"`
	SpecialInstructions *string `json:"special_instructions,omitempty"`
}

type DeliveryRequest struct {
	ID                  int64     `json:"id"`
	OrderID             int64     `json:"order_id"`
	DeliveryAddress     string    `json:"delivery_address"`
	ContactName         string    `json:"contact_name"`
	ContactPhone        string    `json:"contact_phone"`
	PreferredDate       time.Time `json:"preferred_date"`
	SpecialInstructions *string   `json:"special_instructions,omitempty"`
	Status              string    `json:"status"`
	UserID              string    `json:"user_id"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type DeliveryRequestStatusUpdate struct {
	Status string `json:"status"`
}
