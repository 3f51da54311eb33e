package dashboard_metrics_get

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

	metrics, err := h.service.GetMetrics(r.Context(), *user)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	series := make([]dto.OrderSeriesPoint, len(metrics.OrdersLastWeek))
	for i, point := range metrics.OrdersLastWeek {
		series[i] = dto.OrderSeriesPoint{
			Date:       point.Date.Format("2006-01-02"),
			OrderCount: point.OrderCount,
			RevenueSum: point.RevenueSum,
		}
	}

	metricsDTO := dto.DashboardMetrics{
		TotalOrders:         metrics.TotalOrders,
		PendingOrders:       metrics.PendingOrders,
		InProductionOrders:  metrics.InProductionOrders,
		DeliveredOrders:     metrics.DeliveredOrders,
		TotalRevenue:        metrics.TotalRevenue,
		MonthlyRevenue:      metrics.MonthlyRevenue,
		AverageOrderValue:   metrics.AverageOrderValue,
		DeliveryRequests:    metrics.DeliveryRequests,
		CommunicationsToday: metrics.CommunicationsToday,
		OrdersLastWeek:      series,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(metricsDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
