package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetdesk/internal/dto"
	"fleetdesk/internal/entities"
	"fleetdesk/internal/pkg/middlewares/auth"
	"fleetdesk/internal/service/order"
	"fleetdesk/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var filter entities.OrderFilter

	// Брокеры и клиенты видят только свои заказы
	if !user.Role.SeesAllRecords() {
		filter.UserID = &user.ID
	}

	if statusParam := r.URL.Query().Get("status"); statusParam != "" {
		status := entities.OrderStatusType(statusParam)
		filter.Status = &status
	}

	orderEntities, err := h.service.GetOrders(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTOs := make([]dto.Order, len(orderEntities))
	for i, orderEntity := range orderEntities {
		orderDTOs[i] = toDTO(orderEntity)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDTO(orderEntity entities.Order) dto.Order {
	return dto.Order{
		ID:              orderEntity.ID,
		OrderNumber:     orderEntity.OrderNumber,
		CustomerName:    orderEntity.CustomerName,
		CustomerEmail:   orderEntity.CustomerEmail,
		Model:           orderEntity.Vehicle.Model,
		Trim:            orderEntity.Vehicle.Trim,
		Color:           orderEntity.Vehicle.Color,
		OrderValue:      orderEntity.OrderValue,
		Status:          orderEntity.Status.String(),
		VIN:             orderEntity.VIN,
		BuildDate:       orderEntity.BuildDate,
		DeliveryDate:    orderEntity.DeliveryDate,
		CurrentLocation: orderEntity.CurrentLocation,
		OrderDate:       orderEntity.OrderDate,
		UserID:          orderEntity.UserID,
		CreatedAt:       orderEntity.CreatedAt,
		UpdatedAt:       orderEntity.UpdatedAt,
	}
}
