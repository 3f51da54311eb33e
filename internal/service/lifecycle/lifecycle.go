package lifecycle

import (
	"context"
	"fmt"
	"time"

	"fleetdesk/internal/entities"
	"fleetdesk/pkg/logger"
)

type Lifecycle struct {
	log        serviceLogger
	repository Repository
	events     EventPublisher
}

func New(log serviceLogger, repository Repository, events EventPublisher) *Lifecycle {
	return &Lifecycle{
		log:        log,
		repository: repository,
		events:     events,
	}
}

// Transition переводит заказ в target. Переход confirmed доступен только
// заказу с назначенным VIN, то есть через резервирование стока.
func (s *Lifecycle) Transition(ctx context.Context, orderID int64, target entities.OrderStatusType) (*entities.Order, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if !isValidStatus(target.String()) {
		return nil, ErrInvalidStatus
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if !CanTransition(order.Status, target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, target)
	}
	if target == entities.OrderConfirmed && order.VIN == nil {
		return nil, ErrVINNotAssigned
	}

	orderModify := entities.OrderModify{
		ID:     &orderID,
		Status: &target,
	}
	if target == entities.OrderBuilt {
		buildDate := time.Now().UTC()
		orderModify.BuildDate = &buildDate
	}
	if target == entities.OrderDelivered {
		deliveryDate := time.Now().UTC()
		orderModify.DeliveryDate = &deliveryDate
	}

	updated, err := s.repository.Update(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	if err := s.events.OrderStatusChanged(ctx, updated); err != nil {
		s.log.With(
			logger.NewField("order_id", orderID),
			logger.NewField("status", target.String()),
		).Warn("publish order status change: " + err.Error())
	}

	return updated, nil
}
