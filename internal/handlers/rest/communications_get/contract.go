//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=communications_get_test
package communications_get

import (
	"context"

	"fleetdesk/internal/entities"
	"fleetdesk/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetCommunications(ctx context.Context, orderID int64) ([]entities.Communication, error)
}

type OrderService interface {
	GetOrder(ctx context.Context, id int64) (*entities.Order, error)
}
