package entity

import "time"

type BookStatus string

const (
	BookStatusAvailable   BookStatus = "AVAILABLE"
	BookStatusBorrowed    BookStatus = "BORROWED"
	BookStatusReserved    BookStatus = "RESERVED"
	BookStatusMaintenance BookStatus = "MAINTENANCE"
	BookStatusLost        BookStatus = "LOST"
)

// Book is a single catalog entry. ISBN is unique among books.
// TotalLoans only ever grows.
type Book struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	ISBN            int64      `json:"isbn"`
	Pages           int        `json:"pages"`
	PublicationDate time.Time  `json:"publication_date"`
	Publisher       string     `json:"publisher"`
	Status          BookStatus `json:"status"`
	TotalLoans      int        `json:"total_loans"`
	IsPopular       bool       `json:"is_popular"`
	EntryDate       time.Time  `json:"entry_date"`
	CoverURL        *string    `json:"cover_url,omitempty"`
}
