package matching

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"fleetdesk/internal/entities"
	orderrepo "fleetdesk/internal/repository/order"
	stockrepo "fleetdesk/internal/repository/stock"
	"fleetdesk/internal/service/matcher"
)

const orderColumns = `id, order_number, customer_name, customer_email, model, trim, color,
	order_value, status, vin, build_date, delivery_date, current_location,
	order_date, user_id, created_at, updated_at`

const stockColumns = `id, vin, model, trim, color, year, price, location, status, user_id, created_at, updated_at`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(s scanner) (*orderrepo.OrderDB, error) {
	var orderModel orderrepo.OrderDB
	err := s.Scan(
		&orderModel.ID,
		&orderModel.OrderNumber,
		&orderModel.CustomerName,
		&orderModel.CustomerEmail,
		&orderModel.Model,
		&orderModel.Trim,
		&orderModel.Color,
		&orderModel.OrderValue,
		&orderModel.Status,
		&orderModel.VIN,
		&orderModel.BuildDate,
		&orderModel.DeliveryDate,
		&orderModel.CurrentLocation,
		&orderModel.OrderDate,
		&orderModel.UserID,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}

func scanStockVehicle(s scanner) (*stockrepo.StockVehicleDB, error) {
	var vehicleModel stockrepo.StockVehicleDB
	err := s.Scan(
		&vehicleModel.ID,
		&vehicleModel.VIN,
		&vehicleModel.Model,
		&vehicleModel.Trim,
		&vehicleModel.Color,
		&vehicleModel.Year,
		&vehicleModel.Price,
		&vehicleModel.Location,
		&vehicleModel.Status,
		&vehicleModel.UserID,
		&vehicleModel.CreatedAt,
		&vehicleModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &vehicleModel, nil
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetPendingOrders(ctx context.Context) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE status = 'pending'
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected matching repository pending orders error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]orderrepo.OrderDB, 0, 8)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected matching repository pending orders error: %w", err)
		}
		orderModels = append(orderModels, *orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected matching repository pending orders error: %w", err)
	}

	return orderrepo.ToDomainList(orderModels), nil
}

func (r *Repository) GetAvailableStock(ctx context.Context) ([]entities.StockVehicle, error) {
	query := `SELECT ` + stockColumns + `
		FROM stock_vehicles
		WHERE status = 'available'
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected matching repository available stock error: %w", err)
	}
	defer rows.Close()

	vehicleModels := make([]stockrepo.StockVehicleDB, 0, 8)
	for rows.Next() {
		vehicleModel, err := scanStockVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected matching repository available stock error: %w", err)
		}
		vehicleModels = append(vehicleModels, *vehicleModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected matching repository available stock error: %w", err)
	}

	return stockrepo.ToDomainList(vehicleModels), nil
}

// GetOrderForReserve блокирует строку заказа до конца транзакции.
func (r *Repository) GetOrderForReserve(ctx context.Context, orderID int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
		FOR UPDATE`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, matcher.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected matching repository order for reserve error: %w", err)
	}

	return orderrepo.ToDomain(orderModel), nil
}

// GetStockVehicleForReserve блокирует строку автомобиля до конца транзакции.
func (r *Repository) GetStockVehicleForReserve(ctx context.Context, stockID int64) (*entities.StockVehicle, error) {
	query := `SELECT ` + stockColumns + `
		FROM stock_vehicles
		WHERE id = $1
		FOR UPDATE`

	vehicleModel, err := scanStockVehicle(r.querier.QueryRow(ctx, query, stockID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, matcher.ErrStockNotFound
		}

		return nil, fmt.Errorf("unexpected matching repository stock for reserve error: %w", err)
	}

	return stockrepo.ToDomain(vehicleModel), nil
}

// ConfirmOrder подтверждает только pending-заказ, иначе ноль строк и StaleMatch.
func (r *Repository) ConfirmOrder(ctx context.Context, orderID int64, vin string) (*entities.Order, error) {
	query := `UPDATE orders
		SET status = 'confirmed', vin = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + orderColumns

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, orderID, vin))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, matcher.ErrStaleMatch
		}

		return nil, fmt.Errorf("unexpected matching repository confirm order error: %w", err)
	}

	return orderrepo.ToDomain(orderModel), nil
}

// ReserveStockVehicle резервирует только available-автомобиль.
func (r *Repository) ReserveStockVehicle(ctx context.Context, stockID int64) (*entities.StockVehicle, error) {
	query := `UPDATE stock_vehicles
		SET status = 'reserved', updated_at = NOW()
		WHERE id = $1 AND status = 'available'
		RETURNING ` + stockColumns

	vehicleModel, err := scanStockVehicle(r.querier.QueryRow(ctx, query, stockID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, matcher.ErrStaleMatch
		}

		return nil, fmt.Errorf("unexpected matching repository reserve stock error: %w", err)
	}

	return stockrepo.ToDomain(vehicleModel), nil
}
