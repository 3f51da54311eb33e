package notification

func isValidType(notificationType string) bool {
	switch notificationType {
	case "order_update", "delivery_request", "stock_match", "system":
		return true
	default:
		return false
	}
}

func isValidPriority(priority string) bool {
	switch priority {
	case "low", "medium", "high":
		return true
	default:
		return false
	}
}
