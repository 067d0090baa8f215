package utils

import (
	"regexp"
	"strings"
)

var nonDigit = regexp.MustCompile(`\D`)

// NormalizePhoneNumber strips formatting from a guest phone number,
// keeping a leading + for international numbers.
func NormalizePhoneNumber(phoneNumber string) string {
	trimmed := strings.TrimSpace(phoneNumber)
	international := strings.HasPrefix(trimmed, "+")

	digits := nonDigit.ReplaceAllString(trimmed, "")
	if digits == "" {
		return ""
	}
	if international {
		return "+" + digits
	}
	return digits
}

// ValidatePhoneNumber accepts 7 to 15 digits, the E.164 length range.
func ValidatePhoneNumber(phoneNumber string) bool {
	digits := nonDigit.ReplaceAllString(phoneNumber, "")
	return len(digits) >= 7 && len(digits) <= 15
}
