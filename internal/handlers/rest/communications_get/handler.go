package communications_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"fleetdesk/internal/dto"
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

	communicationEntities, err := h.service.GetCommunications(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, communication.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	communicationDTOs := make([]dto.Communication, len(communicationEntities))
	for i, communicationEntity := range communicationEntities {
		communicationDTOs[i] = dto.Communication{
			ID:        communicationEntity.ID,
			OrderID:   communicationEntity.OrderID,
			Sender:    communicationEntity.Sender,
			Message:   communicationEntity.Message,
			Type:      communicationEntity.Type.String(),
			CreatedAt: communicationEntity.CreatedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(communicationDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
