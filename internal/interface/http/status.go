package handlers

import (
	"net/http"
	"strings"
)

// statusForFailure maps a domain failure message onto an HTTP status.
// The use cases report failures as messages rather than typed errors,
// so the mapping keys off well-known phrases.
func statusForFailure(message string) int {
	msg := strings.ToLower(message)
	switch {
	case strings.Contains(msg, "not found"):
		return http.StatusNotFound
	case strings.Contains(msg, "access denied"), strings.Contains(msg, "admin role"):
		return http.StatusForbidden
	case strings.Contains(msg, "already"):
		return http.StatusConflict
	case strings.Contains(msg, "not active"), strings.Contains(msg, "invalid email or password"):
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}
