package stock_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetdesk/internal/dto"
	"fleetdesk/internal/entities"
	"fleetdesk/internal/pkg/middlewares/auth"
	"fleetdesk/internal/service/stock"
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

	var stockCreateDTO dto.StockVehicleCreate
	err := json.NewDecoder(r.Body).Decode(&stockCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	stockModifyEntity := entities.StockVehicleModify{
		VIN:      &stockCreateDTO.VIN,
		Model:    &stockCreateDTO.Model,
		Trim:     &stockCreateDTO.Trim,
		Color:    &stockCreateDTO.Color,
		Year:     &stockCreateDTO.Year,
		Price:    &stockCreateDTO.Price,
		Location: &stockCreateDTO.Location,
		UserID:   &user.ID,
	}

	// Опциональные параметры
	if stockCreateDTO.Status != nil {
		statusType := entities.StockStatusType(*stockCreateDTO.Status)
		stockModifyEntity.Status = &statusType
	}

	id, err := h.service.CreateStockVehicle(r.Context(), stockModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, stock.ErrMissingRequiredFields),
			errors.Is(err, stock.ErrInvalidVIN),
			errors.Is(err, stock.ErrInvalidYear),
			errors.Is(err, stock.ErrInvalidPrice),
			errors.Is(err, stock.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, stock.ErrConflict):
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
