package utils

import (
	"html"
	"strings"
	"unicode"
)

// SanitizeString trims whitespace and escapes HTML entities.
func SanitizeString(input string) string {
	return html.EscapeString(strings.TrimSpace(input))
}

// SanitizePhone strips everything but digits from phone input so the
// pattern validator sees a normalized value.
func SanitizePhone(phone string) string {
	var result strings.Builder
	for _, r := range strings.TrimSpace(phone) {
		if unicode.IsDigit(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}
