package stock

import (
	"fleetdesk/internal/entities"
)

func ToDomain(v *StockVehicleDB) *entities.StockVehicle {
	if v == nil {
		return nil
	}

	return &entities.StockVehicle{
		ID:  v.ID,
		VIN: v.VIN,
		Vehicle: entities.VehicleSpec{
			Model: v.Model,
			Trim:  v.Trim,
			Color: v.Color,
		},
		Year:      v.Year,
		Price:     v.Price,
		Location:  v.Location,
		Status:    entities.StockStatusType(v.Status),
		UserID:    v.UserID,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromDomainModify(stockModify *entities.StockVehicleModify) *StockVehicleModifyDB {
	if stockModify == nil {
		return nil
	}
	stockDB := &StockVehicleModifyDB{
		ID:       stockModify.ID,
		VIN:      stockModify.VIN,
		Model:    stockModify.Model,
		Trim:     stockModify.Trim,
		Color:    stockModify.Color,
		Year:     stockModify.Year,
		Price:    stockModify.Price,
		Location: stockModify.Location,
		UserID:   stockModify.UserID,
	}

	if stockModify.Status != nil {
		status := stockModify.Status.String()
		stockDB.Status = &status
	}

	return stockDB
}

func ToDomainList(vehiclesDB []StockVehicleDB) []entities.StockVehicle {
	if len(vehiclesDB) == 0 {
		return []entities.StockVehicle{}
	}

	result := make([]entities.StockVehicle, len(vehiclesDB))
	for i, vehicleDB := range vehiclesDB {
		result[i] = *ToDomain(&vehicleDB)
	}
	return result
}
