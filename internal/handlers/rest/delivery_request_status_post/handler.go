package delivery_request_status_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"fleetdesk/internal/dto"
	"fleetdesk/internal/entities"
	"fleetdesk/internal/pkg/middlewares/auth"
	"fleetdesk/internal/service/deliveryrequest"
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

	// Одобрение и продвижение заявок - операция дилерского центра
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

	var statusUpdateDTO dto.DeliveryRequestStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestEntity, err := h.service.UpdateStatus(r.Context(), id, entities.DeliveryRequestStatusType(statusUpdateDTO.Status))
	if err != nil {
		switch {
		case errors.Is(err, deliveryrequest.ErrInvalidRequestID),
			errors.Is(err, deliveryrequest.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, deliveryrequest.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, deliveryrequest.ErrRequestNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	requestDTO := dto.DeliveryRequest{
		ID:                  requestEntity.ID,
		OrderID:             requestEntity.OrderID,
		DeliveryAddress:     requestEntity.DeliveryAddress,
		ContactName:         requestEntity.ContactName,
		ContactPhone:        requestEntity.ContactPhone,
		PreferredDate:       requestEntity.PreferredDate,
		SpecialInstructions: requestEntity.SpecialInstructions,
		Status:              requestEntity.Status.String(),
		UserID:              requestEntity.UserID,
		CreatedAt:           requestEntity.CreatedAt,
		UpdatedAt:           requestEntity.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(requestDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
