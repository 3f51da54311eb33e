package stock

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"fleetdesk/internal/entities"
	"fleetdesk/internal/repository"
	"fleetdesk/internal/service/stock"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const stockColumns = `id, vin, model, trim, color, year, price, location, status, user_id, created_at, updated_at`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanStockVehicle(s scanner) (*StockVehicleDB, error) {
	var vehicleModel StockVehicleDB
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

func (r *Repository) Create(ctx context.Context, stockModifyEntity entities.StockVehicleModify) (int64, error) {
	stockModifyModel := FromDomainModify(&stockModifyEntity)
	query := `INSERT INTO stock_vehicles (vin, model, trim, color, year, price, location, status, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		stockModifyModel.VIN,
		stockModifyModel.Model,
		stockModifyModel.Trim,
		stockModifyModel.Color,
		stockModifyModel.Year,
		stockModifyModel.Price,
		stockModifyModel.Location,
		stockModifyModel.Status,
		stockModifyModel.UserID,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, stock.ErrConflict
		}
		return 0, fmt.Errorf("unexpected stock repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, stockModifyEntity entities.StockVehicleModify) (*entities.StockVehicle, error) {
	stockModifyModel := FromDomainModify(&stockModifyEntity)

	builder := qb.
		Update("stock_vehicles")

	// опциональные поля
	if stockModifyModel.VIN != nil {
		builder = builder.Set("vin", stockModifyModel.VIN)
	}
	if stockModifyModel.Model != nil {
		builder = builder.Set("model", stockModifyModel.Model)
	}
	if stockModifyModel.Trim != nil {
		builder = builder.Set("trim", stockModifyModel.Trim)
	}
	if stockModifyModel.Color != nil {
		builder = builder.Set("color", stockModifyModel.Color)
	}
	if stockModifyModel.Year != nil {
		builder = builder.Set("year", stockModifyModel.Year)
	}
	if stockModifyModel.Price != nil {
		builder = builder.Set("price", stockModifyModel.Price)
	}
	if stockModifyModel.Location != nil {
		builder = builder.Set("location", stockModifyModel.Location)
	}
	if stockModifyModel.Status != nil {
		builder = builder.Set("status", stockModifyModel.Status)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": stockModifyModel.ID}).
		Suffix("RETURNING " + stockColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected stock repository update error: %w", err)
	}

	vehicleModel, err := scanStockVehicle(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, stock.ErrStockNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, stock.ErrConflict
		}

		return nil, fmt.Errorf("unexpected stock repository update error: %w", err)
	}

	return ToDomain(vehicleModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.StockVehicle, error) {
	query := `SELECT ` + stockColumns + `
		FROM stock_vehicles
		WHERE id = $1`

	vehicleModel, err := scanStockVehicle(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, stock.ErrStockNotFound
		}

		return nil, fmt.Errorf("unexpected stock repository getbyid error: %w", err)
	}

	return ToDomain(vehicleModel), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.StockFilter) ([]entities.StockVehicle, error) {
	builder := qb.
		Select(stockColumns).
		From("stock_vehicles").
		OrderBy("id")

	if filter.UserID != nil {
		builder = builder.Where(sq.Eq{"user_id": *filter.UserID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected stock repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected stock repository getall error: %w", err)
	}
	defer rows.Close()

	vehicleModels := make([]StockVehicleDB, 0, 8)
	for rows.Next() {
		vehicleModel, err := scanStockVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected stock repository getall error: %w", err)
		}
		vehicleModels = append(vehicleModels, *vehicleModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected stock repository getall error: %w", err)
	}

	return ToDomainList(vehicleModels), nil
}
