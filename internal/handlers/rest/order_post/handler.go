package order_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

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

	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderModifyEntity := entities.OrderModify{
		OrderNumber:   &orderCreateDTO.OrderNumber,
		CustomerName:  &orderCreateDTO.CustomerName,
		CustomerEmail: &orderCreateDTO.CustomerEmail,
		Model:         &orderCreateDTO.Model,
		Trim:          &orderCreateDTO.Trim,
		Color:         &orderCreateDTO.Color,
		OrderValue:    &orderCreateDTO.OrderValue,
		UserID:        &user.ID,
	}

	// Опциональные параметры
	if orderCreateDTO.CurrentLocation != nil {
		orderModifyEntity.CurrentLocation = orderCreateDTO.CurrentLocation
	}
	if orderCreateDTO.OrderDate != nil {
		orderDate, err := time.Parse(time.RFC3339, *orderCreateDTO.OrderDate)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		orderModifyEntity.OrderDate = &orderDate
	}

	id, err := h.service.CreateOrder(r.Context(), orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidEmail),
			errors.Is(err, order.ErrInvalidOrderValue):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
