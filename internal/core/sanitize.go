package core

import (
	"html"
	"strings"
)

// Sanitize trims s and escapes HTML markup. It is meant to be applied once,
// at the point a text reaches the relay; escaping is not idempotent.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return html.EscapeString(strings.TrimSpace(s))
}

// SanitizeBio sanitizes s and then cuts it to at most maxLen runes.
func SanitizeBio(s string, maxLen int) string {
	clean := Sanitize(s)
	if maxLen <= 0 {
		return clean
	}
	r := []rune(clean)
	if len(r) <= maxLen {
		return clean
	}
	return string(r[:maxLen])
}
