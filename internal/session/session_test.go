package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	now := time.Now()
	s := New(3, 4, now)

	require.NotEmpty(t, s.ID)
	assert.Equal(t, 3, s.Level)
	assert.Equal(t, 4, s.Lives)
	assert.Equal(t, now, s.StartedAt)
	assert.False(t, s.Finished())
}

func TestScoring(t *testing.T) {
	s := New(1, 3, time.Now())

	s.RecordCatch(300 * time.Millisecond)
	assert.Equal(t, 10, s.Score)

	s.RecordMiss(500 * time.Millisecond)
	assert.Equal(t, 5, s.Score)
	assert.Equal(t, 2, s.Lives)
}

func TestScoreNeverNegative(t *testing.T) {
	s := New(1, 5, time.Now())

	s.RecordMiss(time.Second)
	s.RecordMiss(time.Second)
	assert.Equal(t, 0, s.Score)
}

func TestAccuracy(t *testing.T) {
	s := New(1, 3, time.Now())
	assert.Zero(t, s.Accuracy(), "no attempts means 0 accuracy")

	s.RecordCatch(time.Millisecond)
	s.RecordCatch(time.Millisecond)
	s.RecordCatch(time.Millisecond)
	s.RecordMiss(time.Millisecond)

	assert.Equal(t, 4, s.Attempts())
	assert.InDelta(t, 75.0, s.Accuracy(), 1e-9)
}

func TestAverageReaction(t *testing.T) {
	s := New(1, 3, time.Now())
	assert.Zero(t, s.AverageReaction())

	s.RecordCatch(200 * time.Millisecond)
	s.RecordCatch(400 * time.Millisecond)
	assert.Equal(t, 300*time.Millisecond, s.AverageReaction())
}

func TestElapsed(t *testing.T) {
	start := time.Now()
	s := New(1, 3, start)
	assert.Equal(t, 90*time.Second, s.Elapsed(start.Add(90*time.Second)))
}

func TestFinishIdempotent(t *testing.T) {
	s := New(1, 3, time.Now())

	first := time.Now()
	s.Finish(first)
	require.True(t, s.Finished())

	s.Finish(first.Add(time.Hour))
	assert.Equal(t, first, *s.EndedAt, "second Finish must not move the end time")
}

func TestUniqueIDs(t *testing.T) {
	a := New(1, 3, time.Now())
	b := New(1, 3, time.Now())
	assert.NotEqual(t, a.ID, b.ID)
}
