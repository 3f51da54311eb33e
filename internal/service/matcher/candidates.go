package matcher

import (
	"strings"

	"fleetdesk/internal/entities"
)

// SpecMatches сравнивает дескрипторы по всем трем полям без учета регистра.
// Частичных и нечетких совпадений нет.
func SpecMatches(a, b entities.VehicleSpec) bool {
	return strings.EqualFold(a.Model, b.Model) &&
		strings.EqualFold(a.Trim, b.Trim) &&
		strings.EqualFold(a.Color, b.Color)
}

// FindCandidates для каждого доступного автомобиля собирает pending-заказы
// с совпадающим дескриптором. Чистая функция, входные срезы не мутирует.
// Неоднозначности (несколько заказов на один автомобиль и наоборот) не
// разрешаются автоматически, выбор пары остается за оператором.
func FindCandidates(stock []entities.StockVehicle, orders []entities.Order) map[int64][]entities.Order {
	candidates := make(map[int64][]entities.Order)

	for _, vehicle := range stock {
		if vehicle.Status != entities.StockAvailable {
			continue
		}
		for _, order := range orders {
			if order.Status != entities.OrderPending {
				continue
			}
			if SpecMatches(vehicle.Vehicle, order.Vehicle) {
				candidates[vehicle.ID] = append(candidates[vehicle.ID], order)
			}
		}
	}

	return candidates
}
