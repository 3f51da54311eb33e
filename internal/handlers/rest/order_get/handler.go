package order_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"fleetdesk/internal/dto"
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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	// Чужой заказ неотличим от несуществующего
	if !user.Role.SeesAllRecords() && orderEntity.UserID != user.ID {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	orderDTO := dto.Order{
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

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
