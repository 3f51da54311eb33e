//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dashboard_test
package dashboard

import (
	"context"

	"fleetdesk/internal/entities"
)

// Repository читает коллекции для агрегации. ownerID == nil означает
// выборку без ограничения по владельцу. Коммуникации скоупятся через
// владельца заказа, к которому они привязаны.
type Repository interface {
	GetOrdersByOwner(ctx context.Context, ownerID *string) ([]entities.Order, error)
	GetDeliveryRequestsByOwner(ctx context.Context, ownerID *string) ([]entities.DeliveryRequest, error)
	GetCommunicationsByOrderOwner(ctx context.Context, ownerID *string) ([]entities.Communication, error)
}
