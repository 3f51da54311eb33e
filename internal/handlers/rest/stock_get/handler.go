package stock_get

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

// Сток - общий инвентарь дилерской сети, список видят все роли.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.UserFromContext(r.Context()); !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var filter entities.StockFilter

	if statusParam := r.URL.Query().Get("status"); statusParam != "" {
		status := entities.StockStatusType(statusParam)
		filter.Status = &status
	}

	vehicleEntities, err := h.service.GetStockVehicles(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, stock.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	vehicleDTOs := make([]dto.StockVehicle, len(vehicleEntities))
	for i, vehicleEntity := range vehicleEntities {
		vehicleDTOs[i] = dto.StockVehicle{
			ID:        vehicleEntity.ID,
			VIN:       vehicleEntity.VIN,
			Model:     vehicleEntity.Vehicle.Model,
			Trim:      vehicleEntity.Vehicle.Trim,
			Color:     vehicleEntity.Vehicle.Color,
			Year:      vehicleEntity.Year,
			Price:     vehicleEntity.Price,
			Location:  vehicleEntity.Location,
			Status:    vehicleEntity.Status.String(),
			UserID:    vehicleEntity.UserID,
			CreatedAt: vehicleEntity.CreatedAt,
			UpdatedAt: vehicleEntity.UpdatedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(vehicleDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
