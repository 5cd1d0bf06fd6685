// Package repository provides PostgreSQL persistence for the API server.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/tomz197/focuscatcher/internal/models"
)

// PostgresUserRepository implements user persistence on PostgreSQL.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresUserRepository creates a repository using the given connection.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// UserExists reports whether a user with the given login is registered.
func (r *PostgresUserRepository) UserExists(ctx context.Context, login string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE login = $1)`,
		login,
	).Scan(&exists)
	return exists, err
}

// CreateUser inserts a new user record.
func (r *PostgresUserRepository) CreateUser(ctx context.Context, u models.User) error {
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO users (id, login, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		u.ID, u.Login, u.PasswordHash, createdAt,
	)
	return err
}

// UserByLogin fetches a user by login. Returns sql.ErrNoRows when absent.
func (r *PostgresUserRepository) UserByLogin(ctx context.Context, login string) (models.User, error) {
	var u models.User
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, login, password_hash, created_at FROM users WHERE login = $1`,
		login,
	).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.CreatedAt)
	return u, err
}
