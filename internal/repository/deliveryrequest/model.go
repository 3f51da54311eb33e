package deliveryrequest

import "time"

type DeliveryRequestDB struct {
	ID                  int64
	OrderID             int64
	DeliveryAddress     string
	ContactName         string
	ContactPhone        string
	PreferredDate       time.Time
	SpecialInstructions *string
	Status              string
	UserID              string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type DeliveryRequestModifyDB struct {
	ID                  *int64
	OrderID             *int64
	DeliveryAddress     *string
	ContactName         *string
	ContactPhone        *string
	PreferredDate       *time.Time
	SpecialInstructions *string
	Status              *string
	UserID              *string
}
