package validation

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidEmailFormat = errors.New("Invalid email format")

// Local part must not start or end with a dot; domain needs a dot and a
// TLD of at least two characters. Consecutive dots are rejected below
// because the pattern cannot see them across the split.
var emailPattern = regexp.MustCompile(`^[^\s@]+(\.[^\s@]+)*@[^\s@]+\.[^\s@]{2,}$`)

// IsValidEmail performs the structural check described above.
func IsValidEmail(email string) bool {
	if !emailPattern.MatchString(email) {
		return false
	}
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || domain == "" {
		return false
	}
	if strings.Contains(local, "..") || strings.Contains(domain, "..") {
		return false
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return true
}

// ValidateAndNormalizeEmail returns nil for blank input (email is
// optional in several contexts), ErrInvalidEmailFormat for malformed
// input, and otherwise the trimmed, lower-cased address.
func ValidateAndNormalizeEmail(email string) (*string, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return nil, nil
	}
	if !IsValidEmail(trimmed) {
		return nil, ErrInvalidEmailFormat
	}
	normalized := strings.ToLower(trimmed)
	return &normalized, nil
}
