package order

import (
	"fleetdesk/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Vehicle: entities.VehicleSpec{
			Model: o.Model,
			Trim:  o.Trim,
			Color: o.Color,
		},
		OrderValue:      o.OrderValue,
		Status:          entities.OrderStatusType(o.Status),
		VIN:             o.VIN,
		BuildDate:       o.BuildDate,
		DeliveryDate:    o.DeliveryDate,
		CurrentLocation: o.CurrentLocation,
		OrderDate:       o.OrderDate,
		UserID:          o.UserID,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{
		ID:              orderModify.ID,
		OrderNumber:     orderModify.OrderNumber,
		CustomerName:    orderModify.CustomerName,
		CustomerEmail:   orderModify.CustomerEmail,
		Model:           orderModify.Model,
		Trim:            orderModify.Trim,
		Color:           orderModify.Color,
		OrderValue:      orderModify.OrderValue,
		VIN:             orderModify.VIN,
		BuildDate:       orderModify.BuildDate,
		DeliveryDate:    orderModify.DeliveryDate,
		CurrentLocation: orderModify.CurrentLocation,
		OrderDate:       orderModify.OrderDate,
		UserID:          orderModify.UserID,
	}

	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}

	return orderDB
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
