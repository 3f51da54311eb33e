package dashboard

import (
	"time"

	"fleetdesk/internal/entities"
)

// Aggregate считает метрики по уже отскоупленным под наблюдателя коллекциям.
// Чистая функция от входных коллекций и опорного времени now.
// Все календарные границы (месяц, день, недельный ряд) считаются в UTC.
func Aggregate(
	orders []entities.Order,
	requests []entities.DeliveryRequest,
	communications []entities.Communication,
	now time.Time,
) entities.DashboardMetrics {
	now = now.UTC()

	metrics := entities.DashboardMetrics{
		TotalOrders:      len(orders),
		DeliveryRequests: len(requests),
	}

	for _, order := range orders {
		switch order.Status {
		case entities.OrderPending:
			metrics.PendingOrders++
		case entities.OrderInProduction:
			metrics.InProductionOrders++
		case entities.OrderDelivered:
			metrics.DeliveredOrders++
		}

		metrics.TotalRevenue += order.OrderValue

		orderDate := order.OrderDate.UTC()
		if orderDate.Year() == now.Year() && orderDate.Month() == now.Month() {
			metrics.MonthlyRevenue += order.OrderValue
		}
	}

	if metrics.TotalOrders > 0 {
		metrics.AverageOrderValue = metrics.TotalRevenue / float64(metrics.TotalOrders)
	}

	nowYear, nowMonth, nowDay := now.Date()
	for _, communication := range communications {
		year, month, day := communication.CreatedAt.UTC().Date()
		if year == nowYear && month == nowMonth && day == nowDay {
			metrics.CommunicationsToday++
		}
	}

	metrics.OrdersLastWeek = lastWeekSeries(orders, now)

	return metrics
}

// lastWeekSeries строит ряд из ровно 7 точек по дням, заканчивающийся
// сегодняшним днем, по возрастанию даты. Дни без заказов дают нулевые точки.
func lastWeekSeries(orders []entities.Order, now time.Time) []entities.OrderSeriesPoint {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	series := make([]entities.OrderSeriesPoint, 7)
	dayIndex := make(map[time.Time]int, 7)
	for i := 0; i < 7; i++ {
		day := startOfToday.AddDate(0, 0, i-6)
		series[i] = entities.OrderSeriesPoint{Date: day}
		dayIndex[day] = i
	}

	for _, order := range orders {
		orderDate := order.OrderDate.UTC()
		day := time.Date(orderDate.Year(), orderDate.Month(), orderDate.Day(), 0, 0, 0, 0, time.UTC)
		if i, ok := dayIndex[day]; ok {
			series[i].OrderCount++
			series[i].RevenueSum += order.OrderValue
		}
	}

	return series
}
