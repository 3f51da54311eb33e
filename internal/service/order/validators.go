package order

import "strings"

func isValidText(text string) bool {
	return strings.TrimSpace(text) != ""
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func isValidOrderValue(value float64) bool {
	return value >= 0
}

func isValidStatus(status string) bool {
	switch status {
	case "pending", "confirmed", "in_production", "built", "in_transit", "delivered", "cancelled":
		return true
	default:
		return false
	}
}
