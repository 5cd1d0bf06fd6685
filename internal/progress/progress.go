// Package progress persists per-level results between play sessions and
// reports finished sessions to the backend.
package progress

import (
	"time"

	"github.com/tomz197/focuscatcher/internal/session"
)

// LevelProgress is the locally stored record for one level.
type LevelProgress struct {
	Level        int           `json:"level"`
	BestAccuracy float64       `json:"best_accuracy"`
	BestReaction time.Duration `json:"best_reaction"` // 0 means no sample yet
	TimesPlayed  int           `json:"times_played"`
	LastPlayed   time.Time     `json:"last_played"`
}

// Improve merges a finished session's results into the record, keeping the
// best accuracy and the lowest nonzero average reaction time.
func (p LevelProgress) Improve(accuracy float64, reaction time.Duration, playedAt time.Time) LevelProgress {
	if accuracy > p.BestAccuracy {
		p.BestAccuracy = accuracy
	}
	if reaction > 0 && (p.BestReaction == 0 || reaction < p.BestReaction) {
		p.BestReaction = reaction
	}
	p.TimesPlayed++
	p.LastPlayed = playedAt
	return p
}

// Store persists level progress and completed sessions.
type Store interface {
	// Levels returns all stored per-level records, keyed by level number.
	Levels() (map[int]LevelProgress, error)
	// RecordSession merges a finished session into its level's record and
	// appends it to the session log.
	RecordSession(s *session.Session) error
	// Sessions returns all completed sessions, oldest first.
	Sessions() ([]session.Session, error)
}
