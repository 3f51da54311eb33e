package communication_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"fleetdesk/internal/dto"
	"fleetdesk/internal/entities"
	"fleetdesk/internal/pkg/middlewares/auth"
	"fleetdesk/internal/service/communication"
	"fleetdesk/internal/service/order"
	"fleetdesk/pkg/logger"
)

type Handler struct {
	log          handlerLogger
	service      Service
	orderService OrderService
}

func New(log handlerLogger, service Service, orderService OrderService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:          handlerLog,
		service:      service,
		orderService: orderService,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	idStr := mux.Vars(r)["id"]
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.orderService.GetOrder(r.Context(), orderID)
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

	var communicationCreateDTO dto.CommunicationCreate
	err = json.NewDecoder(r.Body).Decode(&communicationCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	sender := user.DisplayName
	communicationModifyEntity := entities.CommunicationModify{
		OrderID: &orderID,
		Sender:  &sender,
		Message: &communicationCreateDTO.Message,
	}

	// Опциональные параметры
	if communicationCreateDTO.Type != nil {
		communicationType := entities.CommunicationType(*communicationCreateDTO.Type)
		communicationModifyEntity.Type = &communicationType
	}

	communicationEntity, err := h.service.AddCommunication(r.Context(), communicationModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, communication.ErrMissingRequiredFields),
			errors.Is(err, communication.ErrInvalidType),
			errors.Is(err, communication.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	communicationDTO := dto.Communication{
		ID:        communicationEntity.ID,
		OrderID:   communicationEntity.OrderID,
		Sender:    communicationEntity.Sender,
		Message:   communicationEntity.Message,
		Type:      communicationEntity.Type.String(),
		CreatedAt: communicationEntity.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(communicationDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
