package notifications_get

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

// Уведомления всегда личные: каждый видит только свои, роль не расширяет выборку.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	notificationEntities, err := h.service.GetNotifications(r.Context(), user.ID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	notificationDTOs := make([]dto.Notification, len(notificationEntities))
	for i, notificationEntity := range notificationEntities {
		notificationDTOs[i] = dto.Notification{
			ID:        notificationEntity.ID,
			UserID:    notificationEntity.UserID,
			OrderID:   notificationEntity.OrderID,
			Title:     notificationEntity.Title,
			Message:   notificationEntity.Message,
			Type:      notificationEntity.Type.String(),
			Priority:  notificationEntity.Priority.String(),
			IsRead:    notificationEntity.IsRead,
			CreatedAt: notificationEntity.CreatedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(notificationDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
