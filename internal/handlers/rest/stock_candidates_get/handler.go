package stock_candidates_get

import (
	"encoding/json"
	"net/http"
	"sort"

	"fleetdesk/internal/dto"
	"fleetdesk/internal/entities"
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

	// Матчинг стока - операция дилерского центра
	if !user.Role.SeesAllRecords() {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	candidates, err := h.service.ListCandidates(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Стабильный порядок ответа по id автомобиля
	stockIDs := make([]int64, 0, len(candidates))
	for stockID := range candidates {
		stockIDs = append(stockIDs, stockID)
	}
	sort.Slice(stockIDs, func(i, j int) bool { return stockIDs[i] < stockIDs[j] })

	candidateDTOs := make([]dto.StockCandidates, 0, len(stockIDs))
	for _, stockID := range stockIDs {
		orderEntities := candidates[stockID]

		orderDTOs := make([]dto.Order, len(orderEntities))
		for i, orderEntity := range orderEntities {
			orderDTOs[i] = toOrderDTO(orderEntity)
		}

		candidateDTOs = append(candidateDTOs, dto.StockCandidates{
			StockVehicleID: stockID,
			MatchingOrders: orderDTOs,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(candidateDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toOrderDTO(orderEntity entities.Order) dto.Order {
	return dto.Order{
		ID:              orderEntity.ID,
		OrderNumber:     orderEntity.OrderNumber,
		CustomerName:    orderEntity.CustomerName,
		CustomerEmail:   orderEntity.CustomerEmail,
		Model:           orderEntity.Vehicle.Model,
		Trim:            orderEntity.Vehicle.Trim,
		Color:           orderEntity.Vehicle.Color,
		OrderValue:      orderEntity.OrderValue,
		Status:          orderEntity.Status.String(),
		VIN:             orderEntity.VIN,
		BuildDate:       orderEntity.BuildDate,
		DeliveryDate:    orderEntity.DeliveryDate,
		CurrentLocation: orderEntity.CurrentLocation,
		OrderDate:       orderEntity.OrderDate,
		UserID:          orderEntity.UserID,
		CreatedAt:       orderEntity.CreatedAt,
		UpdatedAt:       orderEntity.UpdatedAt,
	}
}
