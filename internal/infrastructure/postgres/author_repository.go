package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/booklend/booklend/internal/domain/entity"
	"github.com/booklend/booklend/internal/domain/service"
)

type AuthorRepository struct {
	pool *pgxpool.Pool
}

func NewAuthorRepository(pool *pgxpool.Pool) *AuthorRepository {
	return &AuthorRepository{pool: pool}
}

const authorColumns = `id, first_name, last_name, email, biography, nationality,
		birth_date, death_date, phone_number, is_popular`

func (r *AuthorRepository) FindByID(ctx context.Context, id string) (*entity.Author, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+authorColumns+`
		FROM authors
		WHERE id = $1
	`, id)
	return scanAuthor(row)
}

// FindByName matches against first name, last name, or the two joined,
// case-insensitively.
func (r *AuthorRepository) FindByName(ctx context.Context, name string) ([]entity.Author, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+authorColumns+`
		FROM authors
		WHERE first_name ILIKE '%' || $1 || '%'
		   OR last_name ILIKE '%' || $1 || '%'
		   OR (first_name || ' ' || last_name) ILIKE '%' || $1 || '%'
		ORDER BY last_name, first_name
	`, name)
	if err != nil {
		return nil, err
	}
	return scanAuthors(rows)
}

func (r *AuthorRepository) FindByNationality(ctx context.Context, nationality string) ([]entity.Author, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+authorColumns+`
		FROM authors
		WHERE nationality ILIKE $1
		ORDER BY last_name, first_name
	`, nationality)
	if err != nil {
		return nil, err
	}
	return scanAuthors(rows)
}

func (r *AuthorRepository) FindPopularAuthors(ctx context.Context) ([]entity.Author, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+authorColumns+`
		FROM authors
		WHERE is_popular
		ORDER BY last_name, first_name
	`)
	if err != nil {
		return nil, err
	}
	return scanAuthors(rows)
}

func (r *AuthorRepository) FindAll(ctx context.Context) ([]entity.Author, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+authorColumns+`
		FROM authors
		ORDER BY last_name, first_name
	`)
	if err != nil {
		return nil, err
	}
	return scanAuthors(rows)
}

func (r *AuthorRepository) Save(ctx context.Context, a *entity.Author) (*entity.Author, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO authors (id, first_name, last_name, email, biography, nationality,
			birth_date, death_date, phone_number, is_popular)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			biography = EXCLUDED.biography,
			nationality = EXCLUDED.nationality,
			birth_date = EXCLUDED.birth_date,
			death_date = EXCLUDED.death_date,
			phone_number = EXCLUDED.phone_number,
			is_popular = EXCLUDED.is_popular
	`, a.ID, a.FirstName, a.LastName, a.Email, a.Biography, a.Nationality,
		a.BirthDate, a.DeathDate, a.PhoneNumber, a.IsPopular)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AuthorRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	return err
}

func scanAuthor(row pgx.Row) (*entity.Author, error) {
	a := &entity.Author{}
	err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Biography, &a.Nationality,
		&a.BirthDate, &a.DeathDate, &a.PhoneNumber, &a.IsPopular)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func scanAuthors(rows pgx.Rows) ([]entity.Author, error) {
	defer rows.Close()
	out := []entity.Author{}
	for rows.Next() {
		var a entity.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Biography, &a.Nationality,
			&a.BirthDate, &a.DeathDate, &a.PhoneNumber, &a.IsPopular); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

var _ service.AuthorService = (*AuthorRepository)(nil)
