package entity

import "time"

// Author of one or more books in the catalog.
// DeathDate, when present, is strictly after BirthDate.
type Author struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       *string    `json:"email"`
	PhoneNumber *string    `json:"phone_number"`
	Biography   string     `json:"biography"`
	Nationality string     `json:"nationality"`
	BirthDate   time.Time  `json:"birth_date"`
	DeathDate   *time.Time `json:"death_date"`
	IsPopular   bool       `json:"is_popular"`
}
