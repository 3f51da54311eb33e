//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stock_put_test
package stock_put

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
	UpdateStockVehicle(ctx context.Context, stockModifyEntity entities.StockVehicleModify) (*entities.StockVehicle, error)
}
