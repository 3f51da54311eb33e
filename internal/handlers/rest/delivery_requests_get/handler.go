package delivery_requests_get

import (
	"encoding/json"
	"net/http"

	"fleetdesk/internal/dto"
	"fleetdesk/internal/pkg/middlewares/auth"
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

	var ownerID *string
	if !user.Role.SeesAllRecords() {
		ownerID = &user.ID
	}

	requestEntities, err := h.service.GetDeliveryRequests(r.Context(), ownerID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	requestDTOs := make([]dto.DeliveryRequest, len(requestEntities))
	for i, requestEntity := range requestEntities {
		requestDTOs[i] = dto.DeliveryRequest{
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
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(requestDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
