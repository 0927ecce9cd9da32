package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/booklend/booklend/internal/domain/entity"
	"github.com/booklend/booklend/internal/domain/service"
	"github.com/booklend/booklend/pkg/helpers"
)

var ErrBookNotFound = errors.New("book not found")

// BookUsecase covers the catalog: CRUD, lending, popular listing, and
// the optional search/cover-upload extras. ES and GCS are optional;
// when unset, indexing and uploads are skipped.
type BookUsecase struct {
	Books  service.BookService
	Crypto service.CryptoService
	Logger *logrus.Logger

	ES           *elasticsearch.Client
	ESBooksIndex string
	GCS          *storage.Client
	GCSBucket    string
}

func NewBookUsecase(books service.BookService, crypto service.CryptoService, logger *logrus.Logger) *BookUsecase {
	return &BookUsecase{Books: books, Crypto: crypto, Logger: logger}
}

type AddBookRequest struct {
	Title           string    `json:"title"`
	ISBN            *int64    `json:"isbn"`
	Pages           int       `json:"pages"`
	PublicationDate time.Time `json:"publication_date"`
	Publisher       string    `json:"publisher"`
}

type BookResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Book    *entity.Book `json:"book,omitempty"`
}

// Add creates a catalog entry. A zero ISBN is valid; only a missing one
// is rejected.
func (uc *BookUsecase) Add(ctx context.Context, req AddBookRequest) (BookResponse, error) {
	if req.ISBN == nil {
		return BookResponse{Success: false, Message: "ISBN is required"}, nil
	}

	existing, err := uc.Books.FindByISBN(ctx, *req.ISBN)
	if err != nil {
		return BookResponse{}, err
	}
	if existing != nil {
		return BookResponse{Success: false, Message: "Book with this ISBN already exists"}, nil
	}

	newBook := &entity.Book{
		ID:              uc.Crypto.GenerateUUID(),
		Title:           req.Title,
		ISBN:            *req.ISBN,
		Pages:           req.Pages,
		PublicationDate: req.PublicationDate,
		Publisher:       req.Publisher,
		Status:          entity.BookStatusAvailable,
		TotalLoans:      0,
		IsPopular:       false,
		EntryDate:       time.Now(),
	}

	saved, err := uc.Books.Save(ctx, newBook)
	if err != nil {
		return BookResponse{}, err
	}
	uc.indexBook(ctx, saved)

	return BookResponse{Success: true, Message: "Book created successfully", Book: saved}, nil
}

type UpdateBookRequest struct {
	BookID          string     `json:"-"`
	Title           *string    `json:"title"`
	ISBN            *int64     `json:"isbn"`
	Pages           *int       `json:"pages"`
	PublicationDate *time.Time `json:"publication_date"`
	Publisher       *string    `json:"publisher"`
}

// Update merges the supplied fields; a changed ISBN is checked against
// the rest of the catalog, but keeping the current ISBN is not a
// conflict.
func (uc *BookUsecase) Update(ctx context.Context, req UpdateBookRequest) (BookResponse, error) {
	existing, err := uc.Books.FindByID(ctx, req.BookID)
	if err != nil {
		return BookResponse{}, err
	}
	if existing == nil {
		return BookResponse{Success: false, Message: "Book not found"}, nil
	}

	if req.ISBN != nil && *req.ISBN != existing.ISBN {
		conflict, err := uc.Books.FindByISBN(ctx, *req.ISBN)
		if err != nil {
			return BookResponse{}, err
		}
		if conflict != nil && conflict.ID != req.BookID {
			return BookResponse{Success: false, Message: "Book with this ISBN already exists"}, nil
		}
	}

	updated := *existing
	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.ISBN != nil {
		updated.ISBN = *req.ISBN
	}
	if req.Pages != nil {
		updated.Pages = *req.Pages
	}
	if req.PublicationDate != nil {
		updated.PublicationDate = *req.PublicationDate
	}
	if req.Publisher != nil {
		updated.Publisher = *req.Publisher
	}

	saved, err := uc.Books.Save(ctx, &updated)
	if err != nil {
		return BookResponse{}, err
	}
	uc.indexBook(ctx, saved)

	return BookResponse{Success: true, Message: "Book updated successfully", Book: saved}, nil
}

type DeleteBookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (uc *BookUsecase) Delete(ctx context.Context, bookID string) (DeleteBookResponse, error) {
	existing, err := uc.Books.FindByID(ctx, bookID)
	if err != nil {
		return DeleteBookResponse{}, err
	}
	if existing == nil {
		return DeleteBookResponse{Success: false, Message: "Book not found"}, nil
	}

	if err := uc.Books.Delete(ctx, bookID); err != nil {
		return DeleteBookResponse{}, err
	}

	return DeleteBookResponse{Success: true, Message: "Book deleted successfully"}, nil
}

func (uc *BookUsecase) GetByID(ctx context.Context, bookID string) (BookResponse, error) {
	book, err := uc.Books.FindByID(ctx, bookID)
	if err != nil {
		return BookResponse{}, err
	}
	if book == nil {
		return BookResponse{Success: false, Message: "Book not found"}, nil
	}
	return BookResponse{Success: true, Message: "Book retrieved successfully", Book: book}, nil
}

type ListBooksResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Books   []entity.Book `json:"books"`
	Total   int           `json:"total"`
}

func (uc *BookUsecase) List(ctx context.Context) (ListBooksResponse, error) {
	books, err := uc.Books.FindAll(ctx)
	if err != nil {
		return ListBooksResponse{}, err
	}
	return ListBooksResponse{
		Success: true,
		Message: "Books retrieved successfully",
		Books:   books,
		Total:   len(books),
	}, nil
}

// GetPopular always succeeds; the message reflects whether anything is
// flagged popular.
func (uc *BookUsecase) GetPopular(ctx context.Context) (ListBooksResponse, error) {
	books, err := uc.Books.FindPopularBooks(ctx)
	if err != nil {
		return ListBooksResponse{}, err
	}
	msg := "Popular books retrieved successfully"
	if len(books) == 0 {
		msg = "No popular books found"
	}
	return ListBooksResponse{Success: true, Message: msg, Books: books, Total: len(books)}, nil
}

type LendBookRequest struct {
	BookID     string `json:"-"`
	BorrowerID string `json:"borrower_id"`
}

type LendBookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Lend moves an AVAILABLE book to BORROWED. Unlike the other
// operations, persistence errors are folded into the failure response
// rather than propagated.
func (uc *BookUsecase) Lend(ctx context.Context, req LendBookRequest) LendBookResponse {
	book, err := uc.Books.FindByID(ctx, req.BookID)
	if err != nil {
		return lendFailure(err)
	}
	if book == nil {
		return LendBookResponse{Success: false, Message: "Book not found"}
	}
	if book.Status != entity.BookStatusAvailable {
		return LendBookResponse{Success: false, Message: "Book is already lent"}
	}

	lent := *book
	lent.Status = entity.BookStatusBorrowed
	if _, err := uc.Books.Save(ctx, &lent); err != nil {
		return lendFailure(err)
	}

	return LendBookResponse{Success: true, Message: "Book lent successfully"}
}

func lendFailure(err error) LendBookResponse {
	msg := "Unknown error occurred"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return LendBookResponse{Success: false, Message: msg}
}

// Search queries the optional Elasticsearch index over title and
// publisher. Without a configured index it returns an empty result.
func (uc *BookUsecase) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if uc.ES == nil || uc.ESBooksIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "publisher"},
			},
		},
		"size": size,
	}
	body, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := uc.ES.Search(
		uc.ES.Search.WithContext(c),
		uc.ES.Search.WithIndex(uc.ESBooksIndex),
		uc.ES.Search.WithBody(strings.NewReader(string(body))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

// UploadCover stores a cover image in GCS and records its public URL on
// the book.
func (uc *BookUsecase) UploadCover(ctx context.Context, bookID string, r io.Reader, filename, contentType string) (string, error) {
	book, err := uc.Books.FindByID(ctx, bookID)
	if err != nil {
		return "", err
	}
	if book == nil {
		return "", ErrBookNotFound
	}
	if uc.GCS == nil || uc.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("covers", bookID, uc.Crypto.GenerateUUID()+ext))
	url, err := helpers.UploadObject(ctx, uc.GCS, uc.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}

	updated := *book
	updated.CoverURL = &url
	if _, err := uc.Books.Save(ctx, &updated); err != nil {
		return "", err
	}
	uc.indexBook(ctx, &updated)
	return url, nil
}

func (uc *BookUsecase) indexBook(ctx context.Context, b *entity.Book) {
	if uc.ES == nil || uc.ESBooksIndex == "" {
		return
	}
	doc := map[string]any{
		"id":         b.ID,
		"title":      b.Title,
		"isbn":       b.ISBN,
		"publisher":  b.Publisher,
		"status":     b.Status,
		"is_popular": b.IsPopular,
		"entry_date": b.EntryDate.Format(time.RFC3339Nano),
	}
	body, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: uc.ESBooksIndex, DocumentID: b.ID, Body: strings.NewReader(string(body)), Refresh: "false"}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, uc.ES)
	if err != nil {
		if uc.Logger != nil {
			uc.Logger.WithError(err).WithField("book_id", b.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && uc.Logger != nil {
		uc.Logger.WithField("status", res.Status()).WithField("book_id", b.ID).Warn("es index response error")
	}
}
