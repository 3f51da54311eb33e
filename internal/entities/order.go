package entities

import "time"

type Order struct {
	ID              int64
	OrderNumber     string
	CustomerName    string
	CustomerEmail   string
	Vehicle         VehicleSpec
	OrderValue      float64
	Status          OrderStatusType
	VIN             *string
	BuildDate       *time.Time
	DeliveryDate    *time.Time
	CurrentLocation *string
	OrderDate       time.Time
	UserID          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// VehicleSpec - дескриптор автомобиля в заказе. Матчинг со стоком идет
// по всем трем полям (case-insensitive).
type VehicleSpec struct {
	Model string
	Trim  string
	Color string
}

type OrderStatusType string

const (
	OrderPending      OrderStatusType = "pending"
	OrderConfirmed    OrderStatusType = "confirmed"
	OrderInProduction OrderStatusType = "in_production"
	OrderBuilt        OrderStatusType = "built"
	OrderInTransit    OrderStatusType = "in_transit"
	OrderDelivered    OrderStatusType = "delivered"
	OrderCancelled    OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// OrderFilter - nil-поля не ограничивают выборку.
type OrderFilter struct {
	UserID *string
	Status *OrderStatusType
}

type OrderModify struct {
	ID              *int64
	OrderNumber     *string
	CustomerName    *string
	CustomerEmail   *string
	Model           *string
	Trim            *string
	Color           *string
	OrderValue      *float64
	Status          *OrderStatusType
	VIN             *string
	BuildDate       *time.Time
	DeliveryDate    *time.Time
	CurrentLocation *string
	OrderDate       *time.Time
	UserID          *string
}
