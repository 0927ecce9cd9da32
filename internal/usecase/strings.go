package usecase

import "strings"

// trimOrNil trims the value and returns nil when nothing remains.
func trimOrNil(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// trimOrDefault trims the value, falling back to def when blank.
func trimOrDefault(value *string, def string) string {
	if value == nil {
		return def
	}
	if t := trimOrNil(*value); t != nil {
		return *t
	}
	return def
}
