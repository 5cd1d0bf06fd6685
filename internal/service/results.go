package service

import (
	"context"
	"errors"

	"github.com/tomz197/focuscatcher/internal/models"
)

// ErrInvalidResult is returned when an uploaded result fails validation.
var ErrInvalidResult = errors.New("invalid result")

// ResultRepository defines the persistence operations required by ResultService.
type ResultRepository interface {
	SaveResult(ctx context.Context, res models.Result) error
	LevelSummaries(ctx context.Context) ([]models.LevelSummary, error)
	ResultsByLogin(ctx context.Context, login string) ([]models.Result, error)
}

// ResultService validates and stores uploaded session results.
type ResultService struct {
	repo ResultRepository
}

// NewResultService constructs a ResultService using the provided repository.
func NewResultService(repo ResultRepository) *ResultService {
	return &ResultService{repo: repo}
}

// Save validates and persists one uploaded session.
func (s *ResultService) Save(ctx context.Context, res models.Result) error {
	if res.ID == "" || res.Level < 1 ||
		res.Correct < 0 || res.Incorrect < 0 ||
		res.Accuracy < 0 || res.Accuracy > 100 {
		return ErrInvalidResult
	}
	return s.repo.SaveResult(ctx, res)
}

// LevelSummaries returns per-level aggregates over all uploads.
func (s *ResultService) LevelSummaries(ctx context.Context) ([]models.LevelSummary, error) {
	return s.repo.LevelSummaries(ctx)
}

// ResultsByLogin returns a user's uploaded sessions, newest first.
func (s *ResultService) ResultsByLogin(ctx context.Context, login string) ([]models.Result, error) {
	return s.repo.ResultsByLogin(ctx, login)
}
