package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tomz197/focuscatcher/internal/session"
)

const (
	progressFile = "focus_progress.json"
	sessionsFile = "focus_sessions.json"
)

// FileStore persists progress as JSON files in a directory, mirroring the
// browser's local storage. Writes go to a temp file first and are renamed
// into place so a crash never leaves a half-written record.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create progress dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// DefaultDir returns the progress directory under the user's home
// (falling back to the working directory).
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".focuscatcher"
	}
	return filepath.Join(home, ".focuscatcher")
}

// Levels returns all stored per-level records. A missing or unreadable
// file yields an empty map: progress starts fresh rather than blocking play.
func (f *FileStore) Levels() (map[int]LevelProgress, error) {
	var records []LevelProgress
	if err := f.readJSON(progressFile, &records); err != nil {
		return map[int]LevelProgress{}, nil
	}

	levels := make(map[int]LevelProgress, len(records))
	for _, r := range records {
		levels[r.Level] = r
	}
	return levels, nil
}

// Sessions returns all completed sessions, oldest first.
func (f *FileStore) Sessions() ([]session.Session, error) {
	var sessions []session.Session
	if err := f.readJSON(sessionsFile, &sessions); err != nil {
		return nil, nil
	}
	return sessions, nil
}

// RecordSession merges a finished session into its level's record and
// appends it to the session log.
func (f *FileStore) RecordSession(s *session.Session) error {
	levels, err := f.Levels()
	if err != nil {
		return err
	}

	playedAt := s.StartedAt
	if s.EndedAt != nil {
		playedAt = *s.EndedAt
	}

	record, ok := levels[s.Level]
	if !ok {
		record = LevelProgress{Level: s.Level}
	}
	levels[s.Level] = record.Improve(s.Accuracy(), s.AverageReaction(), playedAt)

	records := make([]LevelProgress, 0, len(levels))
	for _, r := range levels {
		records = append(records, r)
	}
	if err := f.writeJSON(progressFile, records); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}

	sessions, _ := f.Sessions()
	sessions = append(sessions, *s)
	if err := f.writeJSON(sessionsFile, sessions); err != nil {
		return fmt.Errorf("save sessions: %w", err)
	}

	return nil
}

// readJSON decodes a file in the store directory into v.
func (f *FileStore) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// writeJSON writes v to a temp file and renames it into place.
func (f *FileStore) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.dir, name+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), filepath.Join(f.dir, name))
}

// Ensure FileStore satisfies Store.
var _ Store = (*FileStore)(nil)
