//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lifecycle_test
package lifecycle

import (
	"context"

	"fleetdesk/internal/entities"
	"fleetdesk/pkg/logger"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
}

// EventPublisher уведомляет внешних потребителей о смене статуса.
// Публикация fire-and-forget: ошибка не откатывает переход.
type EventPublisher interface {
	OrderStatusChanged(ctx context.Context, order *entities.Order) error
}

type serviceLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
