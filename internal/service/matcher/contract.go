//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matcher_test
package matcher

import (
	"context"

	"fleetdesk/internal/entities"
	"fleetdesk/pkg/logger"
)

type Repository interface {
	GetPendingOrders(ctx context.Context) ([]entities.Order, error)
	GetAvailableStock(ctx context.Context) ([]entities.StockVehicle, error)

	GetOrderForReserve(ctx context.Context, orderID int64) (*entities.Order, error)
	GetStockVehicleForReserve(ctx context.Context, stockID int64) (*entities.StockVehicle, error)
	ConfirmOrder(ctx context.Context, orderID int64, vin string) (*entities.Order, error)
	ReserveStockVehicle(ctx context.Context, stockID int64) (*entities.StockVehicle, error)
}

// EventPublisher уведомляет о состоявшемся резервировании, fire-and-forget.
type EventPublisher interface {
	StockMatched(ctx context.Context, order *entities.Order, vehicle *entities.StockVehicle) error
}

type NotificationService interface {
	CreateNotification(ctx context.Context, notificationModifyEntity entities.NotificationModify) (*entities.Notification, error)
	HasUnreadStockMatch(ctx context.Context, orderID int64) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
