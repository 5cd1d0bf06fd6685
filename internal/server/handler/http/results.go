package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomz197/focuscatcher/internal/models"
	"github.com/tomz197/focuscatcher/internal/service"
)

// ResultService defines the result operations required by the HTTP handlers.
type ResultService interface {
	Save(ctx context.Context, res models.Result) error
	LevelSummaries(ctx context.Context) ([]models.LevelSummary, error)
	ResultsByLogin(ctx context.Context, login string) ([]models.Result, error)
}

// ResultHandler handles session result uploads and progress queries.
type ResultHandler struct {
	// ResultService performs the underlying result operations.
	ResultService ResultService
}

// Upload stores one finished game session posted by a client.
func (h *ResultHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var res models.Result
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	err := h.ResultService.Save(r.Context(), res)
	if errors.Is(err, service.ErrInvalidResult) {
		http.Error(w, "invalid result", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// Summaries returns the per-level aggregates across all uploads.
func (h *ResultHandler) Summaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.ResultService.LevelSummaries(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if summaries == nil {
		summaries = []models.LevelSummary{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(summaries)
}

// UserResults returns one user's uploaded sessions, newest first.
func (h *ResultHandler) UserResults(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "login")
	if login == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	results, err := h.ResultService.ResultsByLogin(r.Context(), login)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []models.Result{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(results)
}
