package deliveryrequest

import (
	"context"
	"fmt"
	"strings"

	"fleetdesk/internal/entities"
	"fleetdesk/pkg/logger"
)

type DeliveryRequest struct {
	log          serviceLogger
	repository   Repository
	orderService OrderService
	events       EventPublisher
}

func New(log serviceLogger, repository Repository, orderService OrderService, events EventPublisher) *DeliveryRequest {
	return &DeliveryRequest{
		log:          log,
		repository:   repository,
		orderService: orderService,
		events:       events,
	}
}

// CreateDeliveryRequest создает запрос доставки для собранного заказа.
// Запрос всегда стартует в статусе pending.
func (s *DeliveryRequest) CreateDeliveryRequest(ctx context.Context, requestModify entities.DeliveryRequestModify) (int64, error) {
	if requestModify.OrderID == nil ||
		requestModify.DeliveryAddress == nil ||
		requestModify.ContactName == nil ||
		requestModify.ContactPhone == nil ||
		requestModify.PreferredDate == nil ||
		requestModify.UserID == nil {
		return 0, ErrMissingRequiredFields
	}

	if strings.TrimSpace(*requestModify.DeliveryAddress) == "" ||
		strings.TrimSpace(*requestModify.ContactName) == "" ||
		strings.TrimSpace(*requestModify.ContactPhone) == "" {
		return 0, ErrMissingRequiredFields
	}

	order, err := s.orderService.GetOrder(ctx, *requestModify.OrderID)
	if err != nil {
		return 0, fmt.Errorf("get order: %w", err)
	}
	if order.Status != entities.OrderBuilt {
		return 0, fmt.Errorf("%w: order %d is %s", ErrOrderNotBuilt, order.ID, order.Status)
	}

	initialStatus := entities.DeliveryRequestPending
	requestModify.Status = &initialStatus

	id, err := s.repository.Create(ctx, requestModify)
	if err != nil {
		return 0, fmt.Errorf("create delivery request: %w", err)
	}

	return id, nil
}

// UpdateStatus продвигает запрос по статусной цепочке. Откаты и пропуски
// запрещены, из rejected и completed выхода нет.
func (s *DeliveryRequest) UpdateStatus(ctx context.Context, requestID int64, target entities.DeliveryRequestStatusType) (*entities.DeliveryRequest, error) {
	if requestID <= 0 {
		return nil, ErrInvalidRequestID
	}
	if !isValidStatus(target.String()) {
		return nil, ErrInvalidStatus
	}

	request, err := s.repository.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get delivery request: %w", err)
	}

	if !CanTransition(request.Status, target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, request.Status, target)
	}

	requestModify := entities.DeliveryRequestModify{
		ID:     &requestID,
		Status: &target,
	}
	updated, err := s.repository.Update(ctx, requestModify)
	if err != nil {
		return nil, fmt.Errorf("update delivery request status: %w", err)
	}

	order, err := s.orderService.GetOrder(ctx, updated.OrderID)
	if err != nil {
		s.log.With(
			logger.NewField("request_id", requestID),
		).Warn("get order for delivery request event: " + err.Error())
		return updated, nil
	}

	if err := s.events.DeliveryRequestChanged(ctx, updated, order); err != nil {
		s.log.With(
			logger.NewField("request_id", requestID),
			logger.NewField("status", target.String()),
		).Warn("publish delivery request change: " + err.Error())
	}

	return updated, nil
}

func (s *DeliveryRequest) GetDeliveryRequest(ctx context.Context, id int64) (*entities.DeliveryRequest, error) {
	if id <= 0 {
		return nil, ErrInvalidRequestID
	}

	request, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery request: %w", err)
	}

	return request, nil
}

func (s *DeliveryRequest) GetDeliveryRequests(ctx context.Context, ownerID *string) ([]entities.DeliveryRequest, error) {
	requests, err := s.repository.GetAll(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery requests: %w", err)
	}

	return requests, nil
}
