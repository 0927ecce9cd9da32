package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/booklend/booklend/internal/domain/entity"
	"github.com/booklend/booklend/internal/domain/service"
)

// UserRepository implements service.AuthService on Postgres. Lookups
// return (nil, nil) when no row matches.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, email, first_name, last_name, phone_number, hashed_password,
		status, enabled, book_limit, registration_date, role`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, strings.ToLower(strings.TrimSpace(email)))
	return scanUser(row)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

// Save upserts by id so registration and later status flips go through
// the same method.
func (r *UserRepository) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, first_name, last_name, phone_number, hashed_password,
			status, enabled, book_limit, registration_date, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			phone_number = EXCLUDED.phone_number,
			hashed_password = EXCLUDED.hashed_password,
			status = EXCLUDED.status,
			enabled = EXCLUDED.enabled,
			book_limit = EXCLUDED.book_limit,
			role = EXCLUDED.role
	`, u.ID, strings.ToLower(u.Email), u.FirstName, u.LastName, u.PhoneNumber, u.HashedPassword,
		u.Status, u.Enabled, u.BookLimit, u.RegistrationDate, u.Role)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PhoneNumber, &u.HashedPassword,
		&u.Status, &u.Enabled, &u.BookLimit, &u.RegistrationDate, &u.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

var _ service.AuthService = (*UserRepository)(nil)
