package stock_put

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

	// Правка стока - операция дилерского центра
	if !user.Role.SeesAllRecords() {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var stockUpdateDTO dto.StockVehicleUpdate
	err := json.NewDecoder(r.Body).Decode(&stockUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	stockModifyEntity := entities.StockVehicleModify{
		ID: &stockUpdateDTO.ID,
	}

	// Опциональные параметры
	if stockUpdateDTO.Model != nil {
		stockModifyEntity.Model = stockUpdateDTO.Model
	}
	if stockUpdateDTO.Trim != nil {
		stockModifyEntity.Trim = stockUpdateDTO.Trim
	}
	if stockUpdateDTO.Color != nil {
		stockModifyEntity.Color = stockUpdateDTO.Color
	}
	if stockUpdateDTO.Year != nil {
		stockModifyEntity.Year = stockUpdateDTO.Year
	}
	if stockUpdateDTO.Price != nil {
		stockModifyEntity.Price = stockUpdateDTO.Price
	}
	if stockUpdateDTO.Location != nil {
		stockModifyEntity.Location = stockUpdateDTO.Location
	}
	if stockUpdateDTO.Status != nil {
		statusType := entities.StockStatusType(*stockUpdateDTO.Status)
		stockModifyEntity.Status = &statusType
	}

	vehicleEntity, err := h.service.UpdateStockVehicle(r.Context(), stockModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, stock.ErrInvalidStockID),
			errors.Is(err, stock.ErrMissingRequiredFields),
			errors.Is(err, stock.ErrInvalidVIN),
			errors.Is(err, stock.ErrInvalidYear),
			errors.Is(err, stock.ErrInvalidPrice),
			errors.Is(err, stock.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, stock.ErrStockNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	vehicleDTO := dto.StockVehicle{
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

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(vehicleDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
