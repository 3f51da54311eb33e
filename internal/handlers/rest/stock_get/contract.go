//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stock_get_test
package stock_get

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
	GetStockVehicles(ctx context.Context, filter entities.StockFilter) ([]entities.StockVehicle, error)
}
