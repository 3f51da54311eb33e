package lifecycle

import "fleetdesk/internal/entities"

// nextStatus задает единственный допустимый шаг вперед по жизненному циклу
// заказа. Пропуски и откаты запрещены, единственный выход в сторону - cancelled.
var nextStatus = map[entities.OrderStatusType]entities.OrderStatusType{
	entities.OrderPending:      entities.OrderConfirmed,
	entities.OrderConfirmed:    entities.OrderInProduction,
	entities.OrderInProduction: entities.OrderBuilt,
	entities.OrderBuilt:        entities.OrderInTransit,
	entities.OrderInTransit:    entities.OrderDelivered,
}

func IsTerminal(status entities.OrderStatusType) bool {
	return status == entities.OrderDelivered || status == entities.OrderCancelled
}

// CanTransition проверяет что from -> to это допустимый переход:
// либо следующий статус в цепочке, либо отмена нетерминального заказа.
func CanTransition(from, to entities.OrderStatusType) bool {
	if IsTerminal(from) {
		return false
	}
	if to == entities.OrderCancelled {
		return true
	}
	return nextStatus[from] == to
}
