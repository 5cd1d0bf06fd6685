// Package session tracks a single play-through of a level: catches,
// misses, reaction times, score and lives.
package session

import (
	"time"

	"github.com/google/uuid"
)

// Scoring rules.
const (
	CatchPoints = 10
	MissPenalty = 5
)

// Session records the player's performance during one level attempt.
type Session struct {
	ID        string     `json:"id"`
	Level     int        `json:"level"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`

	CorrectCatches   int             `json:"correct_catches"`
	IncorrectCatches int             `json:"incorrect_catches"`
	ReactionTimes    []time.Duration `json:"reaction_times"`

	Score int `json:"score"`
	Lives int `json:"lives"`
}

// New starts a session for the given level with the given number of lives.
func New(level, lives int, now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Level:     level,
		StartedAt: now,
		Lives:     lives,
	}
}

// RecordCatch registers a correct catch and its reaction time.
func (s *Session) RecordCatch(reaction time.Duration) {
	s.CorrectCatches++
	s.Score += CatchPoints
	s.ReactionTimes = append(s.ReactionTimes, reaction)
}

// RecordMiss registers an incorrect catch (a distractor or empty space).
// It costs a life and points; the score never goes negative.
func (s *Session) RecordMiss(reaction time.Duration) {
	s.IncorrectCatches++
	s.Score -= MissPenalty
	if s.Score < 0 {
		s.Score = 0
	}
	s.Lives--
	s.ReactionTimes = append(s.ReactionTimes, reaction)
}

// Attempts returns the total number of catch attempts.
func (s *Session) Attempts() int {
	return s.CorrectCatches + s.IncorrectCatches
}

// Accuracy returns the catch accuracy as a percentage.
// A session with no attempts has 0 accuracy.
func (s *Session) Accuracy() float64 {
	attempts := s.Attempts()
	if attempts == 0 {
		return 0
	}
	return float64(s.CorrectCatches) / float64(attempts) * 100
}

// AverageReaction returns the mean reaction time, or 0 with no samples.
func (s *Session) AverageReaction() time.Duration {
	if len(s.ReactionTimes) == 0 {
		return 0
	}
	var total time.Duration
	for _, rt := range s.ReactionTimes {
		total += rt
	}
	return total / time.Duration(len(s.ReactionTimes))
}

// Elapsed returns how long the session has been running.
func (s *Session) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.StartedAt)
}

// Finish stamps the session's end time. Calling it twice is a no-op.
func (s *Session) Finish(now time.Time) {
	if s.EndedAt == nil {
		t := now
		s.EndedAt = &t
	}
}

// Finished reports whether the session has ended.
func (s *Session) Finished() bool {
	return s.EndedAt != nil
}
