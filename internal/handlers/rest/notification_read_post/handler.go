package notification_read_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"fleetdesk/internal/dto"
	"fleetdesk/internal/pkg/middlewares/auth"
	"fleetdesk/internal/service/notification"
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

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	notificationEntity, err := h.service.MarkRead(r.Context(), id, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrInvalidNotificationID),
			errors.Is(err, notification.ErrInvalidUserID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, notification.ErrNotificationNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	notificationDTO := dto.Notification{
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

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(notificationDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
