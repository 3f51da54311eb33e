package stock_reserve_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetdesk/internal/dto"
	"fleetdesk/internal/pkg/middlewares/auth"
	"fleetdesk/internal/service/matcher"
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

	// Резервирование - операция дилерского центра
	if !user.Role.SeesAllRecords() {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var reserveDTO dto.StockReserve
	err := json.NewDecoder(r.Body).Decode(&reserveDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	reservation, err := h.service.Reserve(r.Context(), reserveDTO.OrderID, reserveDTO.StockVehicleID)
	if err != nil {
		switch {
		case errors.Is(err, matcher.ErrInvalidOrderID),
			errors.Is(err, matcher.ErrInvalidStockID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, matcher.ErrOrderNotFound),
			errors.Is(err, matcher.ErrStockNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, matcher.ErrStaleMatch):
			// Гонка проиграна: кандидаты устарели, оператор перечитывает список
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	reservationDTO := dto.StockReservation{
		OrderID:        reservation.OrderID,
		OrderNumber:    reservation.OrderNumber,
		StockVehicleID: reservation.StockVehicleID,
		VIN:            reservation.VIN,
		ReservedAt:     reservation.ReservedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(reservationDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
