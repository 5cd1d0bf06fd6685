// Package http provides the HTTP handlers and routing for the API server.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tomz197/focuscatcher/internal/models"
	"github.com/tomz197/focuscatcher/internal/service"
)

// UserService defines the account operations required by the HTTP handlers.
type UserService interface {
	Register(ctx context.Context, login, password string) error
	Login(ctx context.Context, login, password string) (models.User, error)
}

// UserHandler handles registration and login requests.
type UserHandler struct {
	// UserService performs the underlying account operations.
	UserService UserService
}

// CredentialsRequest is the JSON payload for registration and login.
type CredentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Register handles user registration requests. It expects a JSON body
// with non-empty "login" and "password" fields.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Login == "" || req.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	err := h.UserService.Register(r.Context(), req.Login, req.Password)
	if errors.Is(err, service.ErrUserExists) {
		http.Error(w, "user already exists", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"user":   req.Login,
	})
}

// Login verifies credentials and confirms the account. Session tokens
// are not issued yet; clients only use this to validate a login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Login == "" || req.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	u, err := h.UserService.Login(r.Context(), req.Login, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"user":   u.Login,
	})
}
