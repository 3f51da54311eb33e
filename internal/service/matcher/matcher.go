package matcher

import (
	"context"
	"fmt"
	"time"

	"fleetdesk/internal/entities"
	"fleetdesk/internal/repository"
	"fleetdesk/pkg/logger"
)

type Matcher struct {
	log           serviceLogger
	repository    Repository
	events        EventPublisher
	notifications NotificationService
	txManager     TxManager
}

func New(
	log serviceLogger,
	repository Repository,
	events EventPublisher,
	notifications NotificationService,
	txManager TxManager,
) *Matcher {
	return &Matcher{
		log:           log,
		repository:    repository,
		events:        events,
		notifications: notifications,
		txManager:     txManager,
	}
}

// ListCandidates читает текущие доступный сток и pending-заказы и строит
// маппинг кандидатов. Результат носит рекомендательный характер: к моменту
// резервирования состояние может уйти, Reserve перепроверяет все заново.
func (s *Matcher) ListCandidates(ctx context.Context) (map[int64][]entities.Order, error) {
	stock, err := s.repository.GetAvailableStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("get available stock: %w", err)
	}

	orders, err := s.repository.GetPendingOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("get pending orders: %w", err)
	}

	return FindCandidates(stock, orders), nil
}

// Reserve подтверждает заказ и резервирует автомобиль одной транзакцией.
// Предусловия перепроверяются внутри транзакции: заказ все еще pending,
// автомобиль все еще available, дескрипторы совпадают.
func (s *Matcher) Reserve(ctx context.Context, orderID, stockID int64) (*entities.StockReservation, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if stockID <= 0 {
		return nil, ErrInvalidStockID
	}

	reservation := entities.StockReservation{}
	var matchedOrder *entities.Order
	var matchedVehicle *entities.StockVehicle

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetOrderForReserve(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order for reserve: %w", err)
		}
		if order.Status != entities.OrderPending {
			return fmt.Errorf("%w: order %d is %s", ErrStaleMatch, orderID, order.Status)
		}

		vehicle, err := s.repository.GetStockVehicleForReserve(ctx, stockID)
		if err != nil {
			return fmt.Errorf("get stock vehicle for reserve: %w", err)
		}
		if vehicle.Status != entities.StockAvailable {
			return fmt.Errorf("%w: stock vehicle %d is %s", ErrStaleMatch, stockID, vehicle.Status)
		}

		if !SpecMatches(vehicle.Vehicle, order.Vehicle) {
			return fmt.Errorf("%w: descriptors diverged", ErrStaleMatch)
		}

		confirmedOrder, err := s.repository.ConfirmOrder(ctx, orderID, vehicle.VIN)
		if err != nil {
			return fmt.Errorf("confirm order: %w", err)
		}

		reservedVehicle, err := s.repository.ReserveStockVehicle(ctx, stockID)
		if err != nil {
			return fmt.Errorf("reserve stock vehicle: %w", err)
		}

		matchedOrder = confirmedOrder
		matchedVehicle = reservedVehicle
		reservation = entities.StockReservation{
			OrderID:        confirmedOrder.ID,
			OrderNumber:    confirmedOrder.OrderNumber,
			StockVehicleID: reservedVehicle.ID,
			VIN:            reservedVehicle.VIN,
			ReservedAt:     time.Now().UTC(),
		}
		return nil
	})
	if err != nil {
		// проигрыш конкурентному оператору выглядит как ошибка сериализации
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, fmt.Errorf("%w: %s", ErrStaleMatch, err.Error())
		}
		return nil, err
	}

	if err := s.events.StockMatched(ctx, matchedOrder, matchedVehicle); err != nil {
		s.log.With(
			logger.NewField("order_id", orderID),
			logger.NewField("stock_id", stockID),
		).Warn("publish stock match: " + err.Error())
	}

	return &reservation, nil
}

// ScanForMatches создает владельцам pending-заказов уведомления о появлении
// подходящего автомобиля в стоке. Пока предыдущее уведомление по заказу
// не прочитано, новое не создается.
func (s *Matcher) ScanForMatches(ctx context.Context) (int64, error) {
	candidates, err := s.ListCandidates(ctx)
	if err != nil {
		return 0, err
	}

	seen := make(map[int64]bool)
	var created int64
	for _, orders := range candidates {
		for _, order := range orders {
			if seen[order.ID] {
				continue
			}
			seen[order.ID] = true

			hasUnread, err := s.notifications.HasUnreadStockMatch(ctx, order.ID)
			if err != nil {
				return created, fmt.Errorf("check unread stock match: %w", err)
			}
			if hasUnread {
				continue
			}

			title := "Stock match found"
			message := fmt.Sprintf("Order %s has a matching vehicle in stock", order.OrderNumber)
			notificationType := entities.NotificationStockMatch
			priority := entities.PriorityMedium
			notificationModify := entities.NotificationModify{
				UserID:   &order.UserID,
				OrderID:  &order.ID,
				Title:    &title,
				Message:  &message,
				Type:     &notificationType,
				Priority: &priority,
			}

			if _, err := s.notifications.CreateNotification(ctx, notificationModify); err != nil {
				return created, fmt.Errorf("create stock match notification: %w", err)
			}
			created++
		}
	}

	return created, nil
}
