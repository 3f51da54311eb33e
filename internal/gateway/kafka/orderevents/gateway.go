package orderevents

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"fleetdesk/internal/entities"
)

// Gateway публикует доменные события в один топик, ключ — id заказа,
// чтобы события одного заказа читались в порядке записи.
type Gateway struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Gateway {
	return &Gateway{
		producer: producer,
		topic:    topic,
	}
}

func (g *Gateway) OrderStatusChanged(ctx context.Context, order *entities.Order) error {
	event := orderStatusChangedEvent{
		envelope:    newEnvelope(kindOrderStatusChanged),
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status.String(),
		VIN:         order.VIN,
		UserID:      order.UserID,
	}

	err := g.publish(ctx, kindOrderStatusChanged, order.ID, event)
	if err != nil {
		return fmt.Errorf("gateway orderevents, order status changed: %d: %w", order.ID, err)
	}

	return nil
}

func (g *Gateway) StockMatched(ctx context.Context, order *entities.Order, vehicle *entities.StockVehicle) error {
	event := stockMatchedEvent{
		envelope:       newEnvelope(kindStockMatched),
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
		StockVehicleID: vehicle.ID,
		VIN:            vehicle.VIN,
		UserID:         order.UserID,
	}

	err := g.publish(ctx, kindStockMatched, order.ID, event)
	if err != nil {
		return fmt.Errorf("gateway orderevents, stock matched: %d: %w", order.ID, err)
	}

	return nil
}

func (g *Gateway) DeliveryRequestChanged(ctx context.Context, request *entities.DeliveryRequest, order *entities.Order) error {
	event := deliveryRequestChangedEvent{
		envelope:          newEnvelope(kindDeliveryRequestChanged),
		DeliveryRequestID: request.ID,
		OrderID:           request.OrderID,
		OrderNumber:       order.OrderNumber,
		Status:            request.Status.String(),
		UserID:            request.UserID,
	}

	err := g.publish(ctx, kindDeliveryRequestChanged, request.OrderID, event)
	if err != nil {
		return fmt.Errorf("gateway orderevents, delivery request changed: %d: %w", request.ID, err)
	}

	return nil
}

func (g *Gateway) publish(ctx context.Context, kind string, orderID int64, event interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(orderID, 10)),
		Value: sarama.ByteEncoder(value),
	}

	start := time.Now()
	_, _, err = g.producer.SendMessage(msg)

	// Метрики Prometheus
	EventPublishDuration.WithLabelValues(g.topic, kind).Observe(time.Since(start).Seconds())

	status := "ok"
	if err != nil {
		status = "error"
	}
	EventsPublishedTotal.WithLabelValues(g.topic, kind, status).Inc()

	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

func newEnvelope(kind string) envelope {
	return envelope{
		Kind:       kind,
		OccurredAt: time.Now().UTC(),
	}
}
