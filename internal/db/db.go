// Package db provides PostgreSQL access for the franchise listings store.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping verifies the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// EnsureSchema creates the listings table if it does not exist. The import
// tool calls this before loading rows so a fresh database works out of the
// box.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS listings (
			id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			franchise_name   TEXT NOT NULL UNIQUE,
			industry         TEXT NOT NULL DEFAULT '',
			business_summary TEXT NOT NULL DEFAULT '',
			cash_required    TEXT NOT NULL DEFAULT '',
			franchise_fee    TEXT NOT NULL DEFAULT '',
			units_open       TEXT NOT NULL DEFAULT '',
			semi_absentee    BOOLEAN NOT NULL DEFAULT FALSE,
			passive          BOOLEAN NOT NULL DEFAULT FALSE,
			support          TEXT NOT NULL DEFAULT '',
			url              TEXT NOT NULL DEFAULT '',
			position         INTEGER NOT NULL DEFAULT 0,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure listings schema: %w", err)
	}
	return nil
}
