package communication

import (
	"context"
	"fmt"
	"strings"

	"fleetdesk/internal/entities"
)

type Communication struct {
	repository   Repository
	orderService OrderService
}

func New(repository Repository, orderService OrderService) *Communication {
	return &Communication{
		repository:   repository,
		orderService: orderService,
	}
}

func (s *Communication) AddCommunication(ctx context.Context, communicationModify entities.CommunicationModify) (*entities.Communication, error) {
	if communicationModify.OrderID == nil ||
		communicationModify.Sender == nil ||
		communicationModify.Message == nil ||
		communicationModify.Type == nil {
		return nil, ErrMissingRequiredFields
	}
	if *communicationModify.OrderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if strings.TrimSpace(*communicationModify.Sender) == "" ||
		strings.TrimSpace(*communicationModify.Message) == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidType(communicationModify.Type.String()) {
		return nil, ErrInvalidType
	}

	// запись всегда привязана к существующему заказу
	if _, err := s.orderService.GetOrder(ctx, *communicationModify.OrderID); err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	communication, err := s.repository.Create(ctx, communicationModify)
	if err != nil {
		return nil, fmt.Errorf("create communication: %w", err)
	}

	return communication, nil
}

func (s *Communication) GetCommunications(ctx context.Context, orderID int64) ([]entities.Communication, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	communications, err := s.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get communications: %w", err)
	}

	return communications, nil
}
