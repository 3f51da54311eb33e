package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"fleetdesk/internal/entities"
	"fleetdesk/internal/repository"
	"fleetdesk/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, order_number, customer_name, customer_email, model, trim, color,
	order_value, status, vin, build_date, delivery_date, current_location,
	order_date, user_id, created_at, updated_at`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(s scanner) (*OrderDB, error) {
	var orderModel OrderDB
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

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (int64, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)
	query := `INSERT INTO orders (order_number, customer_name, customer_email, model, trim, color,
			order_value, status, order_date, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModifyModel.OrderNumber,
		orderModifyModel.CustomerName,
		orderModifyModel.CustomerEmail,
		orderModifyModel.Model,
		orderModifyModel.Trim,
		orderModifyModel.Color,
		orderModifyModel.OrderValue,
		orderModifyModel.Status,
		orderModifyModel.OrderDate,
		orderModifyModel.UserID,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, order.ErrConflict
		}
		return 0, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("orders")

	// опциональные поля
	if orderModifyModel.CustomerName != nil {
		builder = builder.Set("customer_name", orderModifyModel.CustomerName)
	}
	if orderModifyModel.CustomerEmail != nil {
		builder = builder.Set("customer_email", orderModifyModel.CustomerEmail)
	}
	if orderModifyModel.Status != nil {
		builder = builder.Set("status", orderModifyModel.Status)
	}
	if orderModifyModel.VIN != nil {
		builder = builder.Set("vin", orderModifyModel.VIN)
	}
	if orderModifyModel.BuildDate != nil {
		builder = builder.Set("build_date", orderModifyModel.BuildDate)
	}
	if orderModifyModel.DeliveryDate != nil {
		builder = builder.Set("delivery_date", orderModifyModel.DeliveryDate)
	}
	if orderModifyModel.CurrentLocation != nil {
		builder = builder.Set("current_location", orderModifyModel.CurrentLocation)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrConflict
		}

		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns).
		From("orders").
		OrderBy("id")

	if filter.UserID != nil {
		builder = builder.Where(sq.Eq{"user_id": *filter.UserID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
		}
		orderModels = append(orderModels, *orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	return ToDomainList(orderModels), nil
}
