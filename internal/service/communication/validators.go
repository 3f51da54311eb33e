package communication

func isValidType(communicationType string) bool {
	switch communicationType {
	case "note", "status_update", "delivery_request", "customer_inquiry":
		return true
	default:
		return false
	}
}
