package stock

import "strings"

func isValidText(text string) bool {
	return strings.TrimSpace(text) != ""
}

// VIN: 17 символов, буквы и цифры, без I, O и Q.
func isValidVIN(vin string) bool {
	if len(vin) != 17 {
		return false
	}
	for _, char := range vin {
		switch {
		case char >= '0' && char <= '9':
		case char >= 'A' && char <= 'Z':
			if char == 'I' || char == 'O' || char == 'Q' {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func isValidStatus(status string) bool {
	switch status {
	case "available", "reserved", "sold", "damaged":
		return true
	default:
		return false
	}
}

func isValidPrice(price float64) bool {
	return price >= 0
}

func isValidYear(year int) bool {
	return year >= 1980 && year <= 2100
}
