//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stock_post_test
package stock_post

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
	CreateStockVehicle(ctx context.Context, stockModifyEntity entities.StockVehicleModify) (int64, error)
}
