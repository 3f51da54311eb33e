//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveryrequest_test
package deliveryrequest

import (
	"context"

	"fleetdesk/internal/entities"
	"fleetdesk/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, requestModifyEntity entities.DeliveryRequestModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.DeliveryRequest, error)
	GetAll(ctx context.Context, ownerID *string) ([]entities.DeliveryRequest, error)
	Update(ctx context.Context, requestModifyEntity entities.DeliveryRequestModify) (*entities.DeliveryRequest, error)
}

type OrderService interface {
	GetOrder(ctx context.Context, id int64) (*entities.Order, error)
}

// EventPublisher уведомляет о смене статуса запроса доставки, fire-and-forget.
type EventPublisher interface {
	DeliveryRequestChanged(ctx context.Context, request *entities.DeliveryRequest, order *entities.Order) error
}

type serviceLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
