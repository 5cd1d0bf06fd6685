package progress

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/focuscatcher/internal/session"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func finishedSession(t *testing.T, level, catches, misses int) *session.Session {
	t.Helper()
	start := time.Now().Add(-time.Minute)
	s := session.New(level, 3, start)
	for i := 0; i < catches; i++ {
		s.RecordCatch(250 * time.Millisecond)
	}
	for i := 0; i < misses; i++ {
		s.RecordMiss(600 * time.Millisecond)
	}
	s.Finish(time.Now())
	return s
}

func TestEmptyStore(t *testing.T) {
	store := newTestStore(t)

	levels, err := store.Levels()
	require.NoError(t, err)
	assert.Empty(t, levels)

	sessions, err := store.Sessions()
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestRecordSessionRoundtrip(t *testing.T) {
	store := newTestStore(t)

	s := finishedSession(t, 2, 9, 1)
	require.NoError(t, store.RecordSession(s))

	levels, err := store.Levels()
	require.NoError(t, err)
	require.Contains(t, levels, 2)

	record := levels[2]
	assert.InDelta(t, 90.0, record.BestAccuracy, 1e-9)
	assert.Equal(t, 1, record.TimesPlayed)
	assert.Positive(t, record.BestReaction)

	sessions, err := store.Sessions()
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, s.ID, sessions[0].ID)
}

func TestRecordSessionKeepsBest(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.RecordSession(finishedSession(t, 1, 9, 1)))
	require.NoError(t, store.RecordSession(finishedSession(t, 1, 5, 5)))

	levels, err := store.Levels()
	require.NoError(t, err)

	record := levels[1]
	assert.InDelta(t, 90.0, record.BestAccuracy, 1e-9, "worse run must not lower the best")
	assert.Equal(t, 2, record.TimesPlayed)
}

func TestCorruptFilesStartFresh(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, progressFile), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, sessionsFile), []byte("nope"), 0o644))

	store, err := NewFileStore(dir)
	require.NoError(t, err)

	levels, err := store.Levels()
	require.NoError(t, err)
	assert.Empty(t, levels)

	require.NoError(t, store.RecordSession(finishedSession(t, 1, 8, 2)))

	levels, err = store.Levels()
	require.NoError(t, err)
	assert.Contains(t, levels, 1)
}

func TestImprove(t *testing.T) {
	var p LevelProgress
	now := time.Now()

	p = p.Improve(60, 400*time.Millisecond, now)
	assert.InDelta(t, 60.0, p.BestAccuracy, 1e-9)
	assert.Equal(t, 400*time.Millisecond, p.BestReaction)

	p = p.Improve(80, 500*time.Millisecond, now)
	assert.InDelta(t, 80.0, p.BestAccuracy, 1e-9)
	assert.Equal(t, 400*time.Millisecond, p.BestReaction, "slower reaction must not replace the best")

	p = p.Improve(40, 0, now)
	assert.InDelta(t, 80.0, p.BestAccuracy, 1e-9)
	assert.Equal(t, 400*time.Millisecond, p.BestReaction, "zero reaction is no sample")
	assert.Equal(t, 3, p.TimesPlayed)
}
