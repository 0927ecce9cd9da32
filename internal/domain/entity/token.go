package entity

import "time"

// EmailVerificationToken proves control of an email address during
// registration. A single token is active per email; resending
// overwrites the previous one. Valid for 24 hours.
type EmailVerificationToken struct {
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
