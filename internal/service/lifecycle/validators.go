package lifecycle

func isValidStatus(status string) bool {
	switch status {
	case "pending", "confirmed", "in_production", "built", "in_transit", "delivered", "cancelled":
		return true
	default:
		return false
	}
}
