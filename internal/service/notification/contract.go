//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"fleetdesk/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, notificationModifyEntity entities.NotificationModify) (*entities.Notification, error)
	GetByUserID(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id int64, userID string) (*entities.Notification, error)
	CountUnread(ctx context.Context, notificationType entities.NotificationType, orderID int64) (int64, error)
}
