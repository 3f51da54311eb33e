package dto

type DashboardMetrics struct {
	TotalOrders         int                `json:"total_orders"`
	PendingOrders       int                `json:"pending_orders"`
	InProductionOrders  int                `json:"in_production_orders"`
	DeliveredOrders     int                `json:"delivered_orders"`
	TotalRevenue        float64            `json:"total_revenue"`
	MonthlyRevenue      float64            `json:"monthly_revenue"`
	AverageOrderValue   float64            `json:"average_order_value"`
	DeliveryRequests    int                `json:"delivery_requests"`
	CommunicationsToday int                `json:"communications_today"`
	OrdersLastWeek      []OrderSeriesPoint `json:"orders_last_week"`
}

type OrderSeriesPoint struct {
	Date       string  `json:"date"`
	OrderCount int     `json:"order_count"`
	RevenueSum float64 `json:"revenue_sum"`
}
