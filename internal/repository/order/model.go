package order

import "time"

type OrderDB struct {
	ID              int64
	OrderNumber     string
	CustomerName    string
	CustomerEmail   string
	Model           string
	Trim            string
	Color           string
	OrderValue      float64
	Status          string
	VIN             *string
	BuildDate       *time.Time
	DeliveryDate    *time.Time
	CurrentLocation *string
	OrderDate       time.Time
	UserID          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderModifyDB struct {
	ID              *int64
	OrderNumber     *string
	CustomerName    *string
	CustomerEmail   *string
	Model           *string
	Trim            *string
	Color           *string
	OrderValue      *float64
	Status          *string
	VIN             *string
	BuildDate       *time.Time
	DeliveryDate    *time.Time
	CurrentLocation *string
	OrderDate       *time.Time
	UserID          *string
}
