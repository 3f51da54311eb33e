package order

import (
	"context"
	"fmt"
	"time"

	"fleetdesk/internal/entities"
)

type Order struct {
	repository Repository
}

func New(repository Repository) *Order {
	return &Order{
		repository: repository,
	}
}

// CreateOrder создает заказ в статусе pending. VIN и производственные
// даты при создании не задаются, они появляются позже по ходу жизненного цикла.
func (s *Order) CreateOrder(ctx context.Context, orderModify entities.OrderModify) (int64, error) {
	if orderModify.OrderNumber == nil ||
		orderModify.CustomerName == nil ||
		orderModify.CustomerEmail == nil ||
		orderModify.Model == nil ||
		orderModify.Trim == nil ||
		orderModify.Color == nil ||
		orderModify.OrderValue == nil ||
		orderModify.UserID == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidText(*orderModify.OrderNumber) ||
		!isValidText(*orderModify.CustomerName) ||
		!isValidText(*orderModify.Model) ||
		!isValidText(*orderModify.Trim) ||
		!isValidText(*orderModify.Color) {
		return 0, ErrMissingRequiredFields
	}
	if !isValidEmail(*orderModify.CustomerEmail) {
		return 0, ErrInvalidEmail
	}
	if !isValidOrderValue(*orderModify.OrderValue) {
		return 0, ErrInvalidOrderValue
	}

	initialStatus := entities.OrderPending
	orderModify.Status = &initialStatus
	orderModify.VIN = nil
	orderModify.BuildDate = nil
	orderModify.DeliveryDate = nil

	if orderModify.OrderDate == nil {
		orderDate := time.Now().UTC()
		orderModify.OrderDate = &orderDate
	}

	id, err := s.repository.Create(ctx, orderModify)
	if err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}

	return id, nil
}

func (s *Order) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

func (s *Order) GetOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	if filter.Status != nil && !isValidStatus(filter.Status.String()) {
		return nil, ErrInvalidStatus
	}

	orders, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return orders, nil
}
