// Package service provides the business logic between HTTP handlers
// and repositories.
package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tomz197/focuscatcher/internal/models"
)

// ErrUserExists is returned when registering an already-taken login.
var ErrUserExists = errors.New("user already exists")

// ErrInvalidCredentials is returned when login or password do not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository defines the persistence operations required by UserService.
type UserRepository interface {
	UserExists(ctx context.Context, login string) (bool, error)
	CreateUser(ctx context.Context, u models.User) error
	UserByLogin(ctx context.Context, login string) (models.User, error)
}

// UserService implements registration and login on top of a UserRepository.
type UserService struct {
	repo UserRepository
}

// NewUserService constructs a UserService using the provided repository.
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, login, password string) error {
	exists, err := s.repo.UserExists(ctx, login)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.CreateUser(ctx, models.User{
		ID:           uuid.NewString(),
		Login:        login,
		PasswordHash: hash,
	})
}

// Login verifies the password for a login and returns the user.
func (s *UserService) Login(ctx context.Context, login, password string) (models.User, error) {
	u, err := s.repo.UserByLogin(ctx, login)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}

	if bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return u, nil
}
