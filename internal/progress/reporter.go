package progress

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/tomz197/focuscatcher/internal/session"
)

// SessionReport is the payload posted to the backend when a session ends.
type SessionReport struct {
	SessionID        string    `json:"session_id"`
	Level            int       `json:"level"`
	CorrectCatches   int       `json:"correct_catches"`
	IncorrectCatches int       `json:"incorrect_catches"`
	Accuracy         float64   `json:"accuracy"`
	AvgReactionMs    int64     `json:"avg_reaction_ms"`
	Score            int       `json:"score"`
	PlayedAt         time.Time `json:"played_at"`
}

// Reporter uploads finished sessions to the backend. Uploads are
// fire-and-forget: failures are logged and dropped, never blocking or
// affecting gameplay. A nil Reporter (or empty base URL) disables uploads.
type Reporter struct {
	baseURL string
	client  *http.Client
}

// NewReporter creates a reporter posting to baseURL (e.g.
// "http://localhost:8080"). Returns nil when baseURL is empty.
func NewReporter(baseURL string) *Reporter {
	if baseURL == "" {
		return nil
	}
	return &Reporter{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// Report uploads a finished session in the background.
func (r *Reporter) Report(s *session.Session) {
	if r == nil {
		return
	}

	playedAt := s.StartedAt
	if s.EndedAt != nil {
		playedAt = *s.EndedAt
	}

	report := SessionReport{
		SessionID:        s.ID,
		Level:            s.Level,
		CorrectCatches:   s.CorrectCatches,
		IncorrectCatches: s.IncorrectCatches,
		Accuracy:         s.Accuracy(),
		AvgReactionMs:    s.AverageReaction().Milliseconds(),
		Score:            s.Score,
		PlayedAt:         playedAt,
	}

	go func() {
		if err := r.post(report); err != nil {
			log.Printf("session upload failed: %v", err)
		}
	}()
}

func (r *Reporter) post(report SessionReport) error {
	body, err := json.Marshal(report)
	if err != nil {
		return err
	}

	resp, err := r.client.Post(r.baseURL+"/api/results", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return nil
}
