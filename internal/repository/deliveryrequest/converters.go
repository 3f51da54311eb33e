package deliveryrequest

import (
	"fleetdesk/internal/entities"
)

func ToDomain(d *DeliveryRequestDB) *entities.DeliveryRequest {
	if d == nil {
		return nil
	}

	return &entities.DeliveryRequest{
		ID:                  d.ID,
		OrderID:             d.OrderID,
		DeliveryAddress:     d.DeliveryAddress,
		ContactName:         d.ContactName,
		ContactPhone:        d.ContactPhone,
		PreferredDate:       d.PreferredDate,
		SpecialInstructions: d.SpecialInstructions,
		Status:              entities.DeliveryRequestStatusType(d.Status),
		UserID:              d.UserID,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

func FromDomainModify(requestModify *entities.DeliveryRequestModify) *DeliveryRequestModifyDB {
	if requestModify == nil {
		return nil
	}
	requestDB := &DeliveryRequestModifyDB{
		ID:                  requestModify.ID,
		OrderID:             requestModify.OrderID,
		DeliveryAddress:     requestModify.DeliveryAddress,
		ContactName:         requestModify.ContactName,
		ContactPhone:        requestModify.ContactPhone,
		PreferredDate:       requestModify.PreferredDate,
		SpecialInstructions: requestModify.SpecialInstructions,
		UserID:              requestModify.UserID,
	}

	if requestModify.Status != nil {
		status := requestModify.Status.String()
		requestDB.Status = &status
	}

	return requestDB
}

func ToDomainList(requestsDB []DeliveryRequestDB) []entities.DeliveryRequest {
	if len(requestsDB) == 0 {
		return []entities.DeliveryRequest{}
	}

	result := make([]entities.DeliveryRequest, len(requestsDB))
	for i, requestDB := range requestsDB {
		result[i] = *ToDomain(&requestDB)
	}
	return result
}
