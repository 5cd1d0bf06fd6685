// Package db initializes the PostgreSQL connection and schema.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    login TEXT NOT NULL UNIQUE,
    password_hash BYTEA NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS results (
    id TEXT PRIMARY KEY,
    login TEXT REFERENCES users(login) ON DELETE CASCADE,
    level INT NOT NULL,
    correct_catches INT NOT NULL,
    incorrect_catches INT NOT NULL,
    accuracy DOUBLE PRECISION NOT NULL,
    avg_reaction_ms BIGINT NOT NULL,
    score INT NOT NULL,
    played_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS results_level_idx ON results(level);
`

// InitPostgres opens a connection, verifies it and applies the schema.
func InitPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return db, nil
}
