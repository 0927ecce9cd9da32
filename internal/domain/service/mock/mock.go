// Package mock provides in-memory implementations of the domain service
// interfaces. They back the use-case tests and the dev server mode; the
// production implementations under internal/infrastructure swap in behind
// the same interfaces.
package mock

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/booklend/booklend/internal/domain/entity"
	"github.com/booklend/booklend/internal/domain/service"
)

type AuthService struct {
	mu    sync.Mutex
	Users []*entity.User
}

func NewAuthService(users ...*entity.User) *AuthService {
	return &AuthService{Users: users}
}

func (s *AuthService) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.Users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (s *AuthService) FindByID(_ context.Context, id string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *AuthService) Save(_ context.Context, u *entity.User) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.Users {
		if existing.ID == u.ID {
			s.Users[i] = u
			return u, nil
		}
	}
	s.Users = append(s.Users, u)
	return u, nil
}

type AuthorService struct {
	mu      sync.Mutex
	Authors []*entity.Author
}

func NewAuthorService(authors ...*entity.Author) *AuthorService {
	return &AuthorService{Authors: authors}
}

func (s *AuthorService) FindByID(_ context.Context, id string) (*entity.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.Authors {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (s *AuthorService) FindByName(_ context.Context, name string) ([]entity.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Author
	for _, a := range s.Authors {
		full := a.FirstName + " " + a.LastName
		if strings.EqualFold(full, name) || strings.EqualFold(a.LastName, name) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *AuthorService) FindByNationality(_ context.Context, nationality string) ([]entity.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Author
	for _, a := range s.Authors {
		if strings.EqualFold(a.Nationality, nationality) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *AuthorService) FindPopularAuthors(_ context.Context) ([]entity.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Author
	for _, a := range s.Authors {
		if a.IsPopular {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *AuthorService) FindAll(_ context.Context) ([]entity.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Author, 0, len(s.Authors))
	for _, a := range s.Authors {
		out = append(out, *a)
	}
	return out, nil
}

func (s *AuthorService) Save(_ context.Context, a *entity.Author) (*entity.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.Authors {
		if existing.ID == a.ID {
			s.Authors[i] = a
			return a, nil
		}
	}
	s.Authors = append(s.Authors, a)
	return a, nil
}

func (s *AuthorService) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.Authors {
		if a.ID == id {
			s.Authors = append(s.Authors[:i], s.Authors[i+1:]...)
			return nil
		}
	}
	return nil
}

type BookService struct {
	mu    sync.Mutex
	Books []*entity.Book

	// SaveErr, when set, is returned from Save. Exercises the lend-book
	// catch-all path in tests.
	SaveErr error
}

func NewBookService(books ...*entity.Book) *BookService {
	return &BookService{Books: books}
}

func (s *BookService) FindByID(_ context.Context, id string) (*entity.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.Books {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (s *BookService) FindByTitle(_ context.Context, title string) ([]entity.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Book
	for _, b := range s.Books {
		if strings.EqualFold(b.Title, title) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *BookService) FindByISBN(_ context.Context, isbn int64) (*entity.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.Books {
		if b.ISBN == isbn {
			return b, nil
		}
	}
	return nil, nil
}

func (s *BookService) FindByStatus(_ context.Context, status entity.BookStatus) ([]entity.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Book
	for _, b := range s.Books {
		if b.Status == status {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *BookService) FindAll(_ context.Context) ([]entity.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Book, 0, len(s.Books))
	for _, b := range s.Books {
		out = append(out, *b)
	}
	return out, nil
}

func (s *BookService) FindPopularBooks(_ context.Context) ([]entity.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Book
	for _, b := range s.Books {
		if b.IsPopular {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *BookService) Save(_ context.Context, b *entity.Book) (*entity.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return nil, s.SaveErr
	}
	for i, existing := range s.Books {
		if existing.ID == b.ID {
			s.Books[i] = b
			return b, nil
		}
	}
	s.Books = append(s.Books, b)
	return b, nil
}

func (s *BookService) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.Books {
		if b.ID == id {
			s.Books = append(s.Books[:i], s.Books[i+1:]...)
			return nil
		}
	}
	return nil
}

// SentEmail records a verification send triggered through the mock.
type SentEmail struct {
	Email string
	Token string
}

type EmailVerificationService struct {
	mu         sync.Mutex
	Tokens     []entity.EmailVerificationToken
	SentEmails []SentEmail
}

func NewEmailVerificationService() *EmailVerificationService {
	return &EmailVerificationService{}
}

func (s *EmailVerificationService) SaveEmailVerificationToken(_ context.Context, email, token string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.Tokens[:0]
	for _, t := range s.Tokens {
		if t.Email != email {
			kept = append(kept, t)
		}
	}
	s.Tokens = append(kept, entity.EmailVerificationToken{Email: email, Token: token, ExpiresAt: expiresAt})
	return nil
}

func (s *EmailVerificationService) FindEmailVerificationToken(_ context.Context, token string) (*entity.EmailVerificationToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.Tokens {
		if t.Token == token {
			found := t
			return &found, nil
		}
	}
	return nil, nil
}

func (s *EmailVerificationService) DeleteEmailVerificationToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.Tokens[:0]
	for _, t := range s.Tokens {
		if t.Token != token {
			kept = append(kept, t)
		}
	}
	s.Tokens = kept
	return nil
}

func (s *EmailVerificationService) SendVerificationEmail(_ context.Context, email, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SentEmails = append(s.SentEmails, SentEmail{Email: email, Token: token})
	return nil
}

// CryptoService hashes with a visible prefix and counts generated tokens
// so tests can assert on them.
type CryptoService struct {
	mu       sync.Mutex
	tokenSeq int
}

func NewCryptoService() *CryptoService {
	return &CryptoService{}
}

func (s *CryptoService) HashPassword(password string) (string, error) {
	return "[HASHED]" + password, nil
}

func (s *CryptoService) ComparePassword(password, hash string) bool {
	return "[HASHED]"+password == hash
}

func (s *CryptoService) GenerateUUID() string {
	return uuid.NewString()
}

func (s *CryptoService) GenerateRandomToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokenSeq++
	return fmt.Sprintf("token-%04d", s.tokenSeq), nil
}

var (
	_ service.AuthService              = (*AuthService)(nil)
	_ service.AuthorService            = (*AuthorService)(nil)
	_ service.BookService              = (*BookService)(nil)
	_ service.EmailVerificationService = (*EmailVerificationService)(nil)
	_ service.CryptoService            = (*CryptoService)(nil)
)
