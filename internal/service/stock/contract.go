//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stock_test
package stock

import (
	"context"

	"fleetdesk/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, stockModifyEntity entities.StockVehicleModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.StockVehicle, error)
	GetAll(ctx context.Context, filter entities.StockFilter) ([]entities.StockVehicle, error)
	Update(ctx context.Context, stockModifyEntity entities.StockVehicleModify) (*entities.StockVehicle, error)
}
