// Package storage implements the PostgreSQL persistence layer for
// business-card user records. It owns the connection pool, creates the
// schema idempotently at startup and exposes the CRUD methods used by the
// service layer.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	// Registers the pgx driver for database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Storage wraps the process-wide connection pool. The pool hands out
// exclusive connections per statement, so Storage is safe for concurrent
// use by request handlers.
type Storage struct {
	DB *sql.DB
}

// New opens the connection pool, verifies it with a ping and makes sure
// the users table exists.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = initializeSchema(db); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

func initializeSchema(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS users(
            id BIGSERIAL PRIMARY KEY,
            uid UUID NOT NULL UNIQUE,
            name TEXT NOT NULL,
            email TEXT NOT NULL UNIQUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        );
    `)
	if err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	_, err = db.Exec(`
        CREATE INDEX IF NOT EXISTS idx_users_uid
        ON users (uid);
    `)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	return nil
}

// Ping runs a trivial query, used by the health endpoint to report
// database liveness.
func (s *Storage) Ping(ctx context.Context) error {
	const op = "storage.Ping"

	var one int
	if err := s.DB.QueryRowContext(ctx, `SELECT 1`).Scan(&one); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
