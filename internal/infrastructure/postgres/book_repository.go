package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/booklend/booklend/internal/domain/entity"
	"github.com/booklend/booklend/internal/domain/service"
)

type BookRepository struct {
	pool *pgxpool.Pool
}

func NewBookRepository(pool *pgxpool.Pool) *BookRepository {
	return &BookRepository{pool: pool}
}

const bookColumns = `id, title, isbn, pages, publication_date, publisher,
		status, total_loans, is_popular, entry_date, cover_url`

func (r *BookRepository) FindByID(ctx context.Context, id string) (*entity.Book, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+bookColumns+`
		FROM books
		WHERE id = $1
	`, id)
	return scanBook(row)
}

func (r *BookRepository) FindByTitle(ctx context.Context, title string) ([]entity.Book, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookColumns+`
		FROM books
		WHERE title ILIKE '%' || $1 || '%'
		ORDER BY title
	`, title)
	if err != nil {
		return nil, err
	}
	return scanBooks(rows)
}

func (r *BookRepository) FindByISBN(ctx context.Context, isbn int64) (*entity.Book, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+bookColumns+`
		FROM books
		WHERE isbn = $1
	`, isbn)
	return scanBook(row)
}

func (r *BookRepository) FindByStatus(ctx context.Context, status entity.BookStatus) ([]entity.Book, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookColumns+`
		FROM books
		WHERE status = $1
		ORDER BY title
	`, status)
	if err != nil {
		return nil, err
	}
	return scanBooks(rows)
}

func (r *BookRepository) FindAll(ctx context.Context) ([]entity.Book, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookColumns+`
		FROM books
		ORDER BY title
	`)
	if err != nil {
		return nil, err
	}
	return scanBooks(rows)
}

func (r *BookRepository) FindPopularBooks(ctx context.Context) ([]entity.Book, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookColumns+`
		FROM books
		WHERE is_popular
		ORDER BY total_loans DESC, title
	`)
	if err != nil {
		return nil, err
	}
	return scanBooks(rows)
}

func (r *BookRepository) Save(ctx context.Context, b *entity.Book) (*entity.Book, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO books (id, title, isbn, pages, publication_date, publisher,
			status, total_loans, is_popular, entry_date, cover_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			isbn = EXCLUDED.isbn,
			pages = EXCLUDED.pages,
			publication_date = EXCLUDED.publication_date,
			publisher = EXCLUDED.publisher,
			status = EXCLUDED.status,
			total_loans = EXCLUDED.total_loans,
			is_popular = EXCLUDED.is_popular,
			cover_url = EXCLUDED.cover_url
	`, b.ID, b.Title, b.ISBN, b.Pages, b.PublicationDate, b.Publisher,
		b.Status, b.TotalLoans, b.IsPopular, b.EntryDate, b.CoverURL)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *BookRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	return err
}

func scanBook(row pgx.Row) (*entity.Book, error) {
	b := &entity.Book{}
	err := row.Scan(&b.ID, &b.Title, &b.ISBN, &b.Pages, &b.PublicationDate, &b.Publisher,
		&b.Status, &b.TotalLoans, &b.IsPopular, &b.EntryDate, &b.CoverURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func scanBooks(rows pgx.Rows) ([]entity.Book, error) {
	defer rows.Close()
	out := []entity.Book{}
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.ISBN, &b.Pages, &b.PublicationDate, &b.Publisher,
			&b.Status, &b.TotalLoans, &b.IsPopular, &b.EntryDate, &b.CoverURL); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

var _ service.BookService = (*BookRepository)(nil)
