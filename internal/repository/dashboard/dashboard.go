package dashboard

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"fleetdesk/internal/entities"
	communicationrepo "fleetdesk/internal/repository/communication"
	deliveryrequestrepo "fleetdesk/internal/repository/deliveryrequest"
	orderrepo "fleetdesk/internal/repository/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetOrdersByOwner(ctx context.Context, ownerID *string) ([]entities.Order, error) {
	builder := qb.
		Select(`id, order_number, customer_name, customer_email, model, trim, color,
			order_value, status, vin, build_date, delivery_date, current_location,
			order_date, user_id, created_at, updated_at`).
		From("orders").
		OrderBy("id")

	if ownerID != nil {
		builder = builder.Where(sq.Eq{"user_id": *ownerID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected dashboard repository orders error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected dashboard repository orders error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]orderrepo.OrderDB, 0, 8)
	for rows.Next() {
		var orderModel orderrepo.OrderDB
		err := rows.Scan(
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
			return nil, fmt.Errorf("unexpected dashboard repository orders error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected dashboard repository orders error: %w", err)
	}

	return orderrepo.ToDomainList(orderModels), nil
}

func (r *Repository) GetDeliveryRequestsByOwner(ctx context.Context, ownerID *string) ([]entities.DeliveryRequest, error) {
	builder := qb.
		Select(`id, order_id, delivery_address, contact_name, contact_phone,
			preferred_date, special_instructions, status, user_id, created_at, updated_at`).
		From("delivery_requests").
		OrderBy("id")

	if ownerID != nil {
		builder = builder.Where(sq.Eq{"user_id": *ownerID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected dashboard repository delivery requests error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected dashboard repository delivery requests error: %w", err)
	}
	defer rows.Close()

	requestModels := make([]deliveryrequestrepo.DeliveryRequestDB, 0, 8)
	for rows.Next() {
		var requestModel deliveryrequestrepo.DeliveryRequestDB
		err := rows.Scan(
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
			return nil, fmt.Errorf("unexpected dashboard repository delivery requests error: %w", err)
		}
		requestModels = append(requestModels, requestModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected dashboard repository delivery requests error: %w", err)
	}

	return deliveryrequestrepo.ToDomainList(requestModels), nil
}

// GetCommunicationsByOrderOwner скоупит коммуникации через владельца заказа:
// собственного user_id у записи журнала нет.
func (r *Repository) GetCommunicationsByOrderOwner(ctx context.Context, ownerID *string) ([]entities.Communication, error) {
	builder := qb.
		Select(`c.id, c.order_id, c.sender, c.message, c.type, c.created_at`).
		From("communications c").
		OrderBy("c.id")

	if ownerID != nil {
		builder = builder.
			Join("orders o ON o.id = c.order_id").
			Where(sq.Eq{"o.user_id": *ownerID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected dashboard repository communications error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected dashboard repository communications error: %w", err)
	}
	defer rows.Close()

	communicationModels := make([]communicationrepo.CommunicationDB, 0, 8)
	for rows.Next() {
		var communicationModel communicationrepo.CommunicationDB
		err := rows.Scan(
			&communicationModel.ID,
			&communicationModel.OrderID,
			&communicationModel.Sender,
			&communicationModel.Message,
			&communicationModel.Type,
			&communicationModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected dashboard repository communications error: %w", err)
		}
		communicationModels = append(communicationModels, communicationModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected dashboard repository communications error: %w", err)
	}

	return communicationrepo.ToDomainList(communicationModels), nil
}
