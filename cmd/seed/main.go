package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/booklend/booklend/config"
	"github.com/booklend/booklend/pkg/helpers"
)

// Seeds a local admin account so the author/book write endpoints are
// usable right after first boot.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@booklend.local"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (id, email, first_name, last_name, hashed_password,
			status, enabled, book_limit, registration_date, role)
		VALUES ($1, $2, 'Admin', 'User', $3, 'ACTIVE', true, 3, $4, 'ADMIN')
		ON CONFLICT (email) DO UPDATE SET role = 'ADMIN', enabled = true, status = 'ACTIVE'
		RETURNING id
	`, uuid.NewString(), email, hash, time.Now()).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s password=%s\n", id, email, password)
}
