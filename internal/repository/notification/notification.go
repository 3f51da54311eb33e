package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"fleetdesk/internal/entities"
	"fleetdesk/internal/service/notification"
)

const notificationColumns = `id, user_id, order_id, title, message, type, priority, is_read, created_at`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanNotification(s scanner) (*NotificationDB, error) {
	var notificationModel NotificationDB
	err := s.Scan(
		&notificationModel.ID,
		&notificationModel.UserID,
		&notificationModel.OrderID,
		&notificationModel.Title,
		&notificationModel.Message,
		&notificationModel.Type,
		&notificationModel.Priority,
		&notificationModel.IsRead,
		&notificationModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &notificationModel, nil
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, notificationModifyEntity entities.NotificationModify) (*entities.Notification, error) {
	query := `INSERT INTO notifications (user_id, order_id, title, message, type, priority)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + notificationColumns

	var typeValue, priorityValue *string
	if notificationModifyEntity.Type != nil {
		value := notificationModifyEntity.Type.String()
		typeValue = &value
	}
	if notificationModifyEntity.Priority != nil {
		value := notificationModifyEntity.Priority.String()
		priorityValue = &value
	}

	notificationModel, err := scanNotification(r.querier.QueryRow(
		ctx,
		query,
		notificationModifyEntity.UserID,
		notificationModifyEntity.OrderID,
		notificationModifyEntity.Title,
		notificationModifyEntity.Message,
		typeValue,
		priorityValue,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return ToDomain(notificationModel), nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]entities.Notification, error) {
	query := `SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository getbyuserid error: %w", err)
	}
	defer rows.Close()

	notificationModels := make([]NotificationDB, 0, 8)
	for rows.Next() {
		notificationModel, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository getbyuserid error: %w", err)
		}
		notificationModels = append(notificationModels, *notificationModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository getbyuserid error: %w", err)
	}

	return ToDomainList(notificationModels), nil
}

// MarkRead идемпотентен: is_read меняется только в сторону true.
// Фильтр по user_id: чужое уведомление выглядит как отсутствующее.
func (r *Repository) MarkRead(ctx context.Context, id int64, userID string) (*entities.Notification, error) {
	query := `UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND user_id = $2
		RETURNING ` + notificationColumns

	notificationModel, err := scanNotification(r.querier.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notification.ErrNotificationNotFound
		}

		return nil, fmt.Errorf("unexpected notification repository markread error: %w", err)
	}

	return ToDomain(notificationModel), nil
}

func (r *Repository) CountUnread(ctx context.Context, notificationType entities.NotificationType, orderID int64) (int64, error) {
	query := `SELECT COUNT(*)
		FROM notifications
		WHERE type = $1 AND order_id = $2 AND is_read = FALSE`

	var count int64
	err := r.querier.QueryRow(ctx, query, notificationType.String(), orderID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository countunread error: %w", err)
	}

	return count, nil
}
