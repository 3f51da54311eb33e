package deliveryrequest

import "fleetdesk/internal/entities"

// allowedTransitions: статус запроса движется только вперед,
// rejected и completed терминальные.
var allowedTransitions = map[entities.DeliveryRequestStatusType][]entities.DeliveryRequestStatusType{
	entities.DeliveryRequestPending:    {entities.DeliveryRequestApproved, entities.DeliveryRequestRejected},
	entities.DeliveryRequestApproved:   {entities.DeliveryRequestInProgress},
	entities.DeliveryRequestInProgress: {entities.DeliveryRequestCompleted},
}

func CanTransition(from, to entities.DeliveryRequestStatusType) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func isValidStatus(status string) bool {
	switch status {
	case "pending", "approved", "rejected", "in_progress", "completed":
		return true
	default:
		return false
	}
}
