package entity

import "time"

type UserStatus string

const (
	UserStatusActive              UserStatus = "ACTIVE"
	UserStatusInactive            UserStatus = "INACTIVE"
	UserStatusSuspended           UserStatus = "SUSPENDED"
	UserStatusPendingVerification UserStatus = "PENDING_VERIFICATION"
)

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// User is a registered borrower or administrator.
// Email is unique across users and stored lower-cased.
type User struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	PhoneNumber      *string    `json:"phone_number"`
	HashedPassword   string     `json:"-"`
	Status           UserStatus `json:"status"`
	Enabled          bool       `json:"enabled"`
	BookLimit        int        `json:"book_limit"`
	RegistrationDate time.Time  `json:"registration_date"`
	Role             UserRole   `json:"role"`
}

// SecureUser is the user shape returned to clients, with the
// password hash stripped.
type SecureUser struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	PhoneNumber      *string    `json:"phone_number"`
	Status           UserStatus `json:"status"`
	Enabled          bool       `json:"enabled"`
	BookLimit        int        `json:"book_limit"`
	RegistrationDate time.Time  `json:"registration_date"`
	Role             UserRole   `json:"role"`
}

func (u *User) Secure() *SecureUser {
	return &SecureUser{
		ID:               u.ID,
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		PhoneNumber:      u.PhoneNumber,
		Status:           u.Status,
		Enabled:          u.Enabled,
		BookLimit:        u.BookLimit,
		RegistrationDate: u.RegistrationDate,
		Role:             u.Role,
	}
}
