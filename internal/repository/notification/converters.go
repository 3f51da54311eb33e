package notification

import (
	"fleetdesk/internal/entities"
)

func ToDomain(n *NotificationDB) *entities.Notification {
	if n == nil {
		return nil
	}

	return &entities.Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		OrderID:   n.OrderID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      entities.NotificationType(n.Type),
		Priority:  entities.NotificationPriority(n.Priority),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func ToDomainList(notificationsDB []NotificationDB) []entities.Notification {
	if len(notificationsDB) == 0 {
		return []entities.Notification{}
	}

	result := make([]entities.Notification, len(notificationsDB))
	for i, notificationDB := range notificationsDB {
		result[i] = *ToDomain(&notificationDB)
	}
	return result
}
