package entities

import "time"

// DashboardMetrics - срез агрегатов по видимым пользователю записям.
// Все календарные границы считаются в UTC.
type DashboardMetrics struct {
	TotalOrders        int
	PendingOrders      int
	InProductionOrders int
	DeliveredOrders    int

	TotalRevenue      float64
	MonthlyRevenue    float64
	AverageOrderValue float64

	DeliveryRequests    int
	CommunicationsToday int

	OrdersLastWeek []OrderSeriesPoint
}

// OrderSeriesPoint - точка дневного ряда заказов. Дни без заказов
// присутствуют в ряду с нулями.
type OrderSeriesPoint struct {
	Date       time.Time
	OrderCount int
	RevenueSum float64
}
