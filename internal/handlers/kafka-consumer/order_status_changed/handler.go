package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/IBM/sarama"
	"fleetdesk/internal/entities"
	notificationservice "fleetdesk/internal/service/notification"
	"fleetdesk/pkg/logger"
)

type Handler struct {
	notificationService      Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notificationService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		notificationService:      notificationService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("order.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("order.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var env envelope
	err := json.Unmarshal(message.Value, &env)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("kind", env.Kind),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.events processing")

	notificationModify, err := h.buildNotification(env.Kind, message.Value)
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Warn("order.events handler skipping message")
		sess.MarkMessage(message, "")
		return false
	}

	notification, err := h.notificationService.CreateNotification(ctx, notificationModify)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.events handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, notificationservice.ErrMissingRequiredFields) ||
			errors.Is(err, notificationservice.ErrInvalidUserID):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.events handler received incomplete event")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.events handler failed to create notification")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("kind", env.Kind),
		logger.NewField("notification", notification.ID),
		logger.NewField("user", notification.UserID),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("order.events: processed")

	sess.MarkMessage(message, "")
	return false
}

// buildNotification собирает уведомление владельцу заказа из события.
func (h *Handler) buildNotification(kind string, payload []byte) (entities.NotificationModify, error) {
	switch kind {
	case kindOrderStatusChanged:
		var event orderStatusChangedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return entities.NotificationModify{}, fmt.Errorf("unmarshal %s: %w", kind, err)
		}

		return entities.NotificationModify{
			UserID:   &event.UserID,
			OrderID:  &event.OrderID,
			Title:    pointer.To("Order status updated"),
			Message:  pointer.To(fmt.Sprintf("Order %s is now %s", event.OrderNumber, event.Status)),
			Type:     pointer.To(entities.NotificationOrderUpdate),
			Priority: pointer.To(entities.PriorityMedium),
		}, nil

	case kindStockMatched:
		var event stockMatchedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return entities.NotificationModify{}, fmt.Errorf("unmarshal %s: %w", kind, err)
		}

		return entities.NotificationModify{
			UserID:   &event.UserID,
			OrderID:  &event.OrderID,
			Title:    pointer.To("Stock match found"),
			Message:  pointer.To(fmt.Sprintf("Vehicle %s reserved for order %s", event.VIN, event.OrderNumber)),
			Type:     pointer.To(entities.NotificationStockMatch),
			Priority: pointer.To(entities.PriorityHigh),
		}, nil

	case kindDeliveryRequestChanged:
		var event deliveryRequestChangedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return entities.NotificationModify{}, fmt.Errorf("unmarshal %s: %w", kind, err)
		}

		return entities.NotificationModify{
			UserID:   &event.UserID,
			OrderID:  &event.OrderID,
			Title:    pointer.To("Delivery request updated"),
			Message:  pointer.To(fmt.Sprintf("Delivery request for order %s is now %s", event.OrderNumber, event.Status)),
			Type:     pointer.To(entities.NotificationDeliveryRequest),
			Priority: pointer.To(entities.PriorityMedium),
		}, nil

	default:
		return entities.NotificationModify{}, fmt.Errorf("unknown event kind %q", kind)
	}
}
