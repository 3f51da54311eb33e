package deliveryrequest

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"fleetdesk/internal/entities"
	"fleetdesk/internal/service/deliveryrequest"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const requestColumns = `id, order_id, delivery_address, contact_name, contact_phone,
	preferred_date, special_instructions, status, user_id, created_at, updated_at`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(s scanner) (*DeliveryRequestDB, error) {
	var requestModel DeliveryRequestDB
	err := s.Scan(
		&requestModel.ID,
		&requestModel.OrderID,
		&requestModel.DeliveryAddress,
		&requestModel.ContactName,
		&requestModel.ContactPhone,
		&requestModel.PreferredDate,
		&requestModel.SpecialInstructions,
		&requestModel.Status,
		&requestModel.UserID,
		&requestModel.CreatedAt,
		&requestModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &requestModel, nil
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, requestModifyEntity entities.DeliveryRequestModify) (int64, error) {
	requestModifyModel := FromDomainModify(&requestModifyEntity)
	query := `INSERT INTO delivery_requests (order_id, delivery_address, contact_name, contact_phone,
			preferred_date, special_instructions, status, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		requestModifyModel.OrderID,
		requestModifyModel.DeliveryAddress,
		requestModifyModel.ContactName,
		requestModifyModel.ContactPhone,
		requestModifyModel.PreferredDate,
		requestModifyModel.SpecialInstructions,
		requestModifyModel.Status,
		requestModifyModel.UserID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery request repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, requestModifyEntity entities.DeliveryRequestModify) (*entities.DeliveryRequest, error) {
	requestModifyModel := FromDomainModify(&requestModifyEntity)

	builder := qb.
		Update("delivery_requests")

	// опциональные поля
	if requestModifyModel.DeliveryAddress != nil {
		builder = builder.Set("delivery_address", requestModifyModel.DeliveryAddress)
	}
	if requestModifyModel.ContactName != nil {
		builder = builder.Set("contact_name", requestModifyModel.ContactName)
	}
	if requestModifyModel.ContactPhone != nil {
		builder = builder.Set("contact_phone", requestModifyModel.ContactPhone)
	}
	if requestModifyModel.PreferredDate != nil {
		builder = builder.Set("preferred_date", requestModifyModel.PreferredDate)
	}
	if requestModifyModel.SpecialInstructions != nil {
		builder = builder.Set("special_instructions", requestModifyModel.SpecialInstructions)
	}
	if requestModifyModel.Status != nil {
		builder = builder.Set("status", requestModifyModel.Status)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": requestModifyModel.ID}).
		Suffix("RETURNING " + requestColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery request repository update error: %w", err)
	}

	requestModel, err := scanRequest(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryrequest.ErrRequestNotFound
		}

		return nil, fmt.Errorf("unexpected delivery request repository update error: %w", err)
	}

	return ToDomain(requestModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.DeliveryRequest, error) {
	query := `SELECT ` + requestColumns + `
		FROM delivery_requests
		WHERE id = $1`

	requestModel, err := scanRequest(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryrequest.ErrRequestNotFound
		}

		return nil, fmt.Errorf("unexpected delivery request repository getbyid error: %w", err)
	}

	return ToDomain(requestModel), nil
}

func (r *Repository) GetAll(ctx context.Context, ownerID *string) ([]entities.DeliveryRequest, error) {
	builder := qb.
		Select(requestColumns).
		From("delivery_requests").
		OrderBy("id")

	if ownerID != nil {
		builder = builder.Where(sq.Eq{"user_id": *ownerID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery request repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery request repository getall error: %w", err)
	}
	defer rows.Close()

	requestModels := make([]DeliveryRequestDB, 0, 8)
	for rows.Next() {
		requestModel, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery request repository getall error: %w", err)
		}
		requestModels = append(requestModels, *requestModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery request repository getall error: %w", err)
	}

	return ToDomainList(requestModels), nil
}
