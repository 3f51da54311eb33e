package dashboard

import (
	"context"
	"fmt"
	"time"

	"fleetdesk/internal/entities"
)

type Dashboard struct {
	repository Repository
}

func New(repository Repository) *Dashboard {
	return &Dashboard{
		repository: repository,
	}
}

// GetMetrics строит срез метрик в видимости наблюдателя: роли дилерского
// центра видят все записи, брокеры и клиенты только свои.
func (s *Dashboard) GetMetrics(ctx context.Context, viewer entities.User) (*entities.DashboardMetrics, error) {
	var ownerID *string
	if !viewer.Role.SeesAllRecords() {
		ownerID = &viewer.ID
	}

	orders, err := s.repository.GetOrdersByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}

	requests, err := s.repository.GetDeliveryRequestsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get delivery requests: %w", err)
	}

	communications, err := s.repository.GetCommunicationsByOrderOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get communications: %w", err)
	}

	metrics := Aggregate(orders, requests, communications, time.Now().UTC())
	return &metrics, nil
}
