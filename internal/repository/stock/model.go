package stock

import "time"

type StockVehicleDB struct {
	ID        int64
	VIN       string
	Model     string
	Trim      string
	Color     string
	Year      int
	Price     float64
	Location  string
	Status    string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type StockVehicleModifyDB struct {
	ID       *int64
	VIN      *string
	Model    *string
	Trim     *string
	Color    *string
	Year     *int
	Price    *float64
	Location *string
	Status   *string
	UserID   *string
}
