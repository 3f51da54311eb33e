//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=communication_test
package communication

import (
	"context"

	"fleetdesk/internal/entities"
)

// Repository не умеет Update и Delete: журнал коммуникаций append-only.
type Repository interface {
	Create(ctx context.Context, communicationModifyEntity entities.CommunicationModify) (*entities.Communication, error)
	GetByOrderID(ctx context.Context, orderID int64) ([]entities.Communication, error)
}

type OrderService interface {
	GetOrder(ctx context.Context, id int64) (*entities.Order, error)
}
