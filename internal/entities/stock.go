package entities

import "time"

type StockVehicle struct {
	ID        int64
	VIN       string
	Vehicle   VehicleSpec
	Year      int
	Price     float64
	Location  string
	Status    StockStatusType
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type StockStatusType string

const (
	StockAvailable StockStatusType = "available"
	StockReserved  StockStatusType = "reserved"
	StockSold      StockStatusType = "sold"
	StockDamaged   StockStatusType = "damaged"
)

func (s StockStatusType) String() string {
	return string(s)
}

type StockFilter struct {
	UserID *string
	Status *StockStatusType
}

// StockReservation - результат резервирования автомобиля под заказ.
type StockReservation struct {
	OrderID        int64
	OrderNumber    string
	StockVehicleID int64
	VIN            string
	ReservedAt     time.Time
}

type StockVehicleModify struct {
	ID       *int64
	VIN      *string
	Model    *string
	Trim     *string
	Color    *string
	Year     *int
	Price    *float64
	Location *string
	Status   *StockStatusType
	UserID   *string
}
