package notification

import (
	"context"
	"fmt"
	"strings"

	"fleetdesk/internal/entities"
)

type Notification struct {
	repository Repository
}

func New(repository Repository) *Notification {
	return &Notification{
		repository: repository,
	}
}

func (s *Notification) CreateNotification(ctx context.Context, notificationModify entities.NotificationModify) (*entities.Notification, error) {
	if notificationModify.UserID == nil ||
		notificationModify.Title == nil ||
		notificationModify.Message == nil ||
		notificationModify.Type == nil {
		return nil, ErrMissingRequiredFields
	}
	if strings.TrimSpace(*notificationModify.UserID) == "" {
		return nil, ErrInvalidUserID
	}
	if strings.TrimSpace(*notificationModify.Title) == "" ||
		strings.TrimSpace(*notificationModify.Message) == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidType(notificationModify.Type.String()) {
		return nil, ErrInvalidType
	}

	if notificationModify.Priority == nil {
		priority := entities.PriorityMedium
		notificationModify.Priority = &priority
	}
	if !isValidPriority(notificationModify.Priority.String()) {
		return nil, ErrInvalidPriority
	}

	// уведомление всегда рождается непрочитанным
	notificationModify.IsRead = nil

	notification, err := s.repository.Create(ctx, notificationModify)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	return notification, nil
}

func (s *Notification) GetNotifications(ctx context.Context, userID string) ([]entities.Notification, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidUserID
	}

	notifications, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	return notifications, nil
}

// MarkRead переводит isRead только в true, обратного пути нет.
// Повторный вызов по прочитанному уведомлению идемпотентен.
// Чужое уведомление неотличимо от несуществующего.
func (s *Notification) MarkRead(ctx context.Context, id int64, userID string) (*entities.Notification, error) {
	if id <= 0 {
		return nil, ErrInvalidNotificationID
	}
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	notification, err := s.repository.MarkRead(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}

	return notification, nil
}

func (s *Notification) HasUnreadStockMatch(ctx context.Context, orderID int64) (bool, error) {
	if orderID <= 0 {
		return false, ErrInvalidOrderID
	}

	count, err := s.repository.CountUnread(ctx, entities.NotificationStockMatch, orderID)
	if err != nil {
		return false, fmt.Errorf("count unread notifications: %w", err)
	}

	return count > 0, nil
}
