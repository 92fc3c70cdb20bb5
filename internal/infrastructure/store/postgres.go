package store

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

// ConnectPostgres establishes a pooled connection to PostgreSQL
func ConnectPostgres(connStr string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// EnsureSchema creates the tables this store needs if they are missing.
// The products table keeps a separate serial column so listing preserves
// insertion order independently of the assigned catalog ids.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			email      TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			secret     TEXT NOT NULL,
			cart       JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);

		CREATE TABLE IF NOT EXISTS products (
			seq        BIGSERIAL PRIMARY KEY,
			id         BIGINT NOT NULL UNIQUE,
			name       TEXT NOT NULL,
			image      TEXT NOT NULL,
			category   TEXT NOT NULL,
			new_price  DOUBLE PRECISION NOT NULL,
			old_price  DOUBLE PRECISION NOT NULL,
			available  BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}
