package order_status_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"fleetdesk/internal/dto"
	"fleetdesk/internal/entities"
	"fleetdesk/internal/pkg/middlewares/auth"
	"fleetdesk/internal/service/lifecycle"
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

	// Переводы статусов - операция дилерского центра
	if !user.Role.SeesAllRecords() {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var statusUpdateDTO dto.OrderStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.Transition(r.Context(), id, entities.OrderStatusType(statusUpdateDTO.Status))
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrInvalidOrderID),
			errors.Is(err, lifecycle.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, lifecycle.ErrInvalidTransition),
			errors.Is(err, lifecycle.ErrVINNotAssigned):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
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
