package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/tomz197/focuscatcher/internal/models"
	"github.com/tomz197/focuscatcher/internal/service"
)

// fakeResultService implements ResultService for testing.
type fakeResultService struct {
	saveErr      error
	saved        []models.Result
	summaries    []models.LevelSummary
	summariesErr error
	results      []models.Result
	resultsErr   error
}

func (f *fakeResultService) Save(ctx context.Context, res models.Result) error {
	if f.saveErr == nil {
		f.saved = append(f.saved, res)
	}
	return f.saveErr
}

func (f *fakeResultService) LevelSummaries(ctx context.Context) ([]models.LevelSummary, error) {
	return f.summaries, f.summariesErr
}

func (f *fakeResultService) ResultsByLogin(ctx context.Context, login string) ([]models.Result, error) {
	return f.results, f.resultsErr
}

func TestResultHandler_Upload(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		service      *fakeResultService
		expectedCode int
	}{
		{
			name:         "invalid JSON",
			body:         `nope`,
			service:      &fakeResultService{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid result",
			body:         `{"session_id":"","level":0}`,
			service:      &fakeResultService{saveErr: service.ErrInvalidResult},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "service error",
			body:         `{"session_id":"s1","level":1}`,
			service:      &fakeResultService{saveErr: errors.New("db error")},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "accepted",
			body:         `{"session_id":"s1","level":2,"correct_catches":8,"incorrect_catches":2,"accuracy":80,"avg_reaction_ms":400,"score":70}`,
			service:      &fakeResultService{},
			expectedCode: http.StatusAccepted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/results", bytes.NewBufferString(tt.body))
			h := &ResultHandler{ResultService: tt.service}
			h.Upload(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
		})
	}
}

func TestResultHandler_UploadStoresPayload(t *testing.T) {
	svc := &fakeResultService{}
	h := &ResultHandler{ResultService: svc}

	body := `{"session_id":"s9","level":4,"correct_catches":10,"incorrect_catches":5,"accuracy":66.7,"avg_reaction_ms":512,"score":75}`
	rec := httptest.NewRecorder()
	h.Upload(rec, httptest.NewRequest("POST", "/api/results", bytes.NewBufferString(body)))

	if len(svc.saved) != 1 {
		t.Fatalf("expected 1 saved result, got %d", len(svc.saved))
	}
	got := svc.saved[0]
	if got.ID != "s9" || got.Level != 4 || got.Correct != 10 || got.AvgReactionMs != 512 {
		t.Errorf("unexpected saved result: %+v", got)
	}
}

func TestResultHandler_Summaries(t *testing.T) {
	svc := &fakeResultService{
		summaries: []models.LevelSummary{
			{Level: 1, Plays: 5, BestAccuracy: 90, BestReactionMs: 300},
		},
	}
	h := &ResultHandler{ResultService: svc}

	rec := httptest.NewRecorder()
	h.Summaries(rec, httptest.NewRequest("GET", "/api/results/levels", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []models.LevelSummary
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 1 || got[0].Level != 1 || got[0].Plays != 5 {
		t.Errorf("unexpected summaries: %+v", got)
	}
}

func TestResultHandler_SummariesEmpty(t *testing.T) {
	h := &ResultHandler{ResultService: &fakeResultService{}}

	rec := httptest.NewRecorder()
	h.Summaries(rec, httptest.NewRequest("GET", "/api/results/levels", nil))

	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}

func TestRouterRoutes(t *testing.T) {
	svc := &fakeResultService{
		results: []models.Result{{ID: "s1", Login: "alice", Level: 1}},
	}
	router := NewRouter(
		&UserHandler{UserService: &fakeUserService{}},
		&ResultHandler{ResultService: svc},
		zap.NewNop(),
	)

	// URL parameters only bind through the router.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/results/alice", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []models.Result
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 1 || got[0].ID != "s1" {
		t.Errorf("unexpected results: %+v", got)
	}
}

func TestRouterRejectsNonJSONUploads(t *testing.T) {
	router := NewRouter(
		&UserHandler{UserService: &fakeUserService{}},
		&ResultHandler{ResultService: &fakeResultService{}},
		zap.NewNop(),
	)

	req := httptest.NewRequest("POST", "/api/results", bytes.NewBufferString("data"))
	req.Header.Set("Content-Type", "text/plain")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", rec.Code)
	}
}
