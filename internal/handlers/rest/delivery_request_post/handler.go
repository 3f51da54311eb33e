package delivery_request_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fleetdesk/internal/dto"
	"fleetdesk/internal/entities"
	"fleetdesk/internal/pkg/middlewares/auth"
	"fleetdesk/internal/service/deliveryrequest"
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

	var requestCreateDTO dto.DeliveryRequestCreate
	err := json.NewDecoder(r.Body).Decode(&requestCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	preferredDate, err := time.Parse(time.RFC3339, requestCreateDTO.PreferredDate)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestModifyEntity := entities.DeliveryRequestModify{
		OrderID:         &requestCreateDTO.OrderID,
		DeliveryAddress: &requestCreateDTO.DeliveryAddress,
		ContactName:     &requestCreateDTO.ContactName,
		ContactPhone:    &requestCreateDTO.ContactPhone,
		PreferredDate:   &preferredDate,
		UserID:          &user.ID,
	}

	// Опциональные параметры
	if requestCreateDTO.SpecialInstructions != nil {
		requestModifyEntity.SpecialInstructions = requestCreateDTO.SpecialInstructions
	}

	id, err := h.service.CreateDeliveryRequest(r.Context(), requestModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, deliveryrequest.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, deliveryrequest.ErrOrderNotBuilt):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusNotFound)
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
