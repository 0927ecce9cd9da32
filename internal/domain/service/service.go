// Package service declares the persistence and collaborator interfaces
// the use cases are written against. Implementations live under
// internal/infrastructure; map-backed mocks for tests live in mock/.
//
// Lookup methods return (nil, nil) when no record matches; errors are
// reserved for infrastructure failure.
package service

import (
	"context"
	"time"

	"github.com/booklend/booklend/internal/domain/entity"
)

// AuthService is the user store as seen by registration and
// authorization flows.
type AuthService interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	Save(ctx context.Context, u *entity.User) (*entity.User, error)
}

type AuthorService interface {
	FindByID(ctx context.Context, id string) (*entity.Author, error)
	FindByName(ctx context.Context, name string) ([]entity.Author, error)
	FindByNationality(ctx context.Context, nationality string) ([]entity.Author, error)
	FindPopularAuthors(ctx context.Context) ([]entity.Author, error)
	FindAll(ctx context.Context) ([]entity.Author, error)
	Save(ctx context.Context, a *entity.Author) (*entity.Author, error)
	Delete(ctx context.Context, id string) error
}

type BookService interface {
	FindByID(ctx context.Context, id string) (*entity.Book, error)
	FindByTitle(ctx context.Context, title string) ([]entity.Book, error)
	FindByISBN(ctx context.Context, isbn int64) (*entity.Book, error)
	FindByStatus(ctx context.Context, status entity.BookStatus) ([]entity.Book, error)
	FindAll(ctx context.Context) ([]entity.Book, error)
	FindPopularBooks(ctx context.Context) ([]entity.Book, error)
	Save(ctx context.Context, b *entity.Book) (*entity.Book, error)
	Delete(ctx context.Context, id string) error
}

// CryptoService covers id/token generation and password hashing.
type CryptoService interface {
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	GenerateUUID() string
	GenerateRandomToken() (string, error)
}

// EmailVerificationService stores registration tokens and triggers the
// verification email. SaveEmailVerificationToken replaces any token
// previously issued for the same email.
type EmailVerificationService interface {
	SaveEmailVerificationToken(ctx context.Context, email, token string, expiresAt time.Time) error
	FindEmailVerificationToken(ctx context.Context, token string) (*entity.EmailVerificationToken, error)
	DeleteEmailVerificationToken(ctx context.Context, token string) error
	SendVerificationEmail(ctx context.Context, email, token string) error
}
