package loop

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/focuscatcher/internal/draw"
	"github.com/tomz197/focuscatcher/internal/input"
	"github.com/tomz197/focuscatcher/internal/level"
	"github.com/tomz197/focuscatcher/internal/object"
	"github.com/tomz197/focuscatcher/internal/progress"
	"github.com/tomz197/focuscatcher/internal/session"
)

// memStore is an in-memory progress.Store for tests.
type memStore struct {
	levels   map[int]progress.LevelProgress
	sessions []session.Session
}

func newMemStore() *memStore {
	return &memStore{levels: map[int]progress.LevelProgress{}}
}

func (m *memStore) Levels() (map[int]progress.LevelProgress, error) {
	return m.levels, nil
}

func (m *memStore) RecordSession(s *session.Session) error {
	playedAt := s.StartedAt
	if s.EndedAt != nil {
		playedAt = *s.EndedAt
	}
	record, ok := m.levels[s.Level]
	if !ok {
		record = progress.LevelProgress{Level: s.Level}
	}
	m.levels[s.Level] = record.Improve(s.Accuracy(), s.AverageReaction(), playedAt)
	m.sessions = append(m.sessions, *s)
	return nil
}

func (m *memStore) Sessions() ([]session.Session, error) {
	return m.sessions, nil
}

func newTestCanvas() *draw.Canvas {
	return draw.NewScaledCanvas(MaxTermWidth, MaxTermHeight, ViewWidth, ViewHeight)
}

func emptyStream() *input.Stream {
	return input.StartStream(bufio.NewReader(strings.NewReader("")))
}

func newTestState(store progress.Store) *State {
	s := NewState(store, nil)
	s.InputStream = nil
	s.Screen = object.Screen{Width: ViewWidth, Height: ViewHeight, CenterX: ViewWidth / 2, CenterY: ViewHeight / 2}
	s.Now = time.Now()
	s.Delta = 16 * time.Millisecond
	return s
}

func addShape(s *State, kind object.Kind, x, y float64, isTarget bool) *object.Shape {
	shape := object.NewShape(kind, x, y, isTarget, time.Minute, s.Now.Add(-500*time.Millisecond))
	shape.Radius = 3.0
	s.AddObject(shape)
	return shape
}

func startTestLevel(t *testing.T, s *State, n int) {
	t.Helper()
	cfg, ok := level.ByNumber(n)
	require.True(t, ok)
	s.InputStream = emptyStream()
	startLevel(s, cfg)
}

func TestLevelUnlockedUsesPredecessor(t *testing.T) {
	store := newMemStore()
	store.levels[1] = progress.LevelProgress{Level: 1, BestAccuracy: 80}
	store.levels[2] = progress.LevelProgress{Level: 2, BestAccuracy: 40}

	s := newTestState(store)
	assert.True(t, s.LevelUnlocked(1))
	assert.True(t, s.LevelUnlocked(2))
	assert.False(t, s.LevelUnlocked(3), "level 2 best accuracy is below the threshold")
}

func TestCatchTarget(t *testing.T) {
	s := newTestState(newMemStore())
	s.Session = session.New(1, 3, s.Now.Add(-10*time.Second))

	shape := addShape(s, object.KindStar, 50, 50, true)
	catchAt(s, 50, 50)

	assert.True(t, shape.IsCaught())
	assert.Equal(t, 1, s.Session.CorrectCatches)
	assert.Equal(t, 10, s.Session.Score)
	require.Len(t, s.Session.ReactionTimes, 1)
	assert.InDelta(t, 500, float64(s.Session.ReactionTimes[0].Milliseconds()), 50,
		"reaction time is the shape's age at catch")
}

func TestCatchDistractorCostsLife(t *testing.T) {
	s := newTestState(newMemStore())
	s.Session = session.New(1, 3, s.Now)

	shape := addShape(s, object.KindCircle, 50, 50, false)
	catchAt(s, 50, 50)

	assert.True(t, shape.IsCaught())
	assert.Equal(t, 1, s.Session.IncorrectCatches)
	assert.Equal(t, 2, s.Session.Lives)
}

func TestCatchEmptySpaceIsMiss(t *testing.T) {
	s := newTestState(newMemStore())
	s.Session = session.New(1, 3, s.Now)

	addShape(s, object.KindStar, 10, 10, true)
	catchAt(s, 100, 70)

	assert.Equal(t, 0, s.Session.CorrectCatches)
	assert.Equal(t, 1, s.Session.IncorrectCatches)
	assert.Equal(t, 2, s.Session.Lives)
}

func TestCatchTopmostWins(t *testing.T) {
	s := newTestState(newMemStore())
	s.Session = session.New(1, 3, s.Now)

	bottom := addShape(s, object.KindCircle, 50, 50, false)
	top := addShape(s, object.KindStar, 50, 50, true)

	catchAt(s, 50, 50)

	assert.True(t, top.IsCaught(), "the later-drawn shape is on top")
	assert.False(t, bottom.IsCaught())
	assert.Equal(t, 1, s.Session.CorrectCatches)
	assert.Equal(t, 0, s.Session.IncorrectCatches)
}

func TestCaughtShapeNotCatchableTwice(t *testing.T) {
	s := newTestState(newMemStore())
	s.Session = session.New(1, 3, s.Now)

	addShape(s, object.KindStar, 50, 50, true)
	catchAt(s, 50, 50)
	catchAt(s, 50, 50)

	assert.Equal(t, 1, s.Session.CorrectCatches)
	assert.Equal(t, 1, s.Session.IncorrectCatches, "second press hits empty space")
}

func TestFinishSessionRecordsAndMovesToResult(t *testing.T) {
	store := newMemStore()
	s := newTestState(store)
	startTestLevel(t, s, 1)

	for i := 0; i < 8; i++ {
		s.Session.RecordCatch(300 * time.Millisecond)
	}
	s.Session.RecordMiss(time.Second)

	finishSession(s, OutcomeWon)

	assert.Equal(t, PhaseResult, s.Phase)
	assert.Equal(t, OutcomeWon, s.Result)
	assert.True(t, s.Session.Finished())
	require.Len(t, store.sessions, 1)
	assert.Contains(t, store.levels, 1)
	assert.InDelta(t, store.levels[1].BestAccuracy, s.Session.Accuracy(), 1e-9,
		"stats cache reloads after recording")
}

func TestStartLevelResetsWorld(t *testing.T) {
	s := newTestState(newMemStore())
	startTestLevel(t, s, 1)

	assert.Equal(t, PhasePlaying, s.Phase)
	require.NotNil(t, s.Session)
	assert.Equal(t, 1, s.Session.Level)
	assert.Equal(t, 3, s.Session.Lives, "lives come from the level's miss budget")
	assert.NotNil(t, s.Cursor)
	assert.Len(t, s.Objects, 2, "cursor plus spawner")
}

func TestUpdateObjectsCompacts(t *testing.T) {
	s := newTestState(newMemStore())
	s.Session = session.New(1, 3, s.Now)

	kept := addShape(s, object.KindStar, 50, 50, true)
	caught := addShape(s, object.KindCircle, 20, 20, false)
	caught.MarkCaught()

	require.NoError(t, updateObjects(s))

	for _, obj := range s.Objects {
		assert.NotSame(t, caught, obj, "caught shapes leave the world")
	}
	assert.Contains(t, s.Objects, object.Object(kept))
}

func TestClampTermSize(t *testing.T) {
	w, h, offC, offR := clampTermSize(200, 60)
	assert.Equal(t, MaxTermWidth, w)
	assert.Equal(t, MaxTermHeight, h)
	assert.Equal(t, (200-MaxTermWidth)/2, offC)
	assert.Equal(t, (60-MaxTermHeight)/2, offR)

	w, h, offC, offR = clampTermSize(80, 24)
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)
	assert.Zero(t, offC)
	assert.Zero(t, offR)
}

func TestNavCooldownEdgeTriggers(t *testing.T) {
	s := newTestState(newMemStore())

	assert.True(t, navPressed(s, true))
	assert.False(t, navPressed(s, true), "held key is swallowed until the cooldown expires")

	s.navCooldown = 0
	assert.True(t, navPressed(s, true))
	assert.False(t, navPressed(s, false))
}

func TestMenuNavigation(t *testing.T) {
	s := newTestState(newMemStore())

	s.Input = object.Input{Down: true}
	updateMenu(s)
	assert.Equal(t, menuProgress, s.MenuIndex)

	s.navCooldown = 0
	s.Input = object.Input{Up: true}
	updateMenu(s)
	assert.Equal(t, menuStart, s.MenuIndex)

	s.navCooldown = 0
	s.Input = object.Input{Enter: true}
	updateMenu(s)
	assert.Equal(t, PhaseLevelSelect, s.Phase)
}

func TestLevelSelectBlocksLockedLevels(t *testing.T) {
	s := newTestState(newMemStore())
	s.Phase = PhaseLevelSelect
	s.LevelIdx = 4 // Level 5, locked with no progress
	s.InputStream = emptyStream()

	s.Input = object.Input{Enter: true}
	updateLevelSelect(s)

	assert.Equal(t, PhaseLevelSelect, s.Phase, "locked level must not start")
	assert.Nil(t, s.Session)
}

func TestTimeLimitLoss(t *testing.T) {
	s := newTestState(newMemStore())
	startTestLevel(t, s, 10)

	// Backdate the session past the limit.
	s.Session.StartedAt = s.Now.Add(-2 * time.Minute)

	err := updatePlaying(s, newTestCanvas())
	require.NoError(t, err)

	assert.Equal(t, PhaseResult, s.Phase)
	assert.Equal(t, OutcomeTimeUp, s.Result)
}

func TestLossWhenOutOfLives(t *testing.T) {
	s := newTestState(newMemStore())
	startTestLevel(t, s, 1)

	for i := 0; i < 3; i++ {
		s.Session.RecordMiss(time.Second)
	}

	err := updatePlaying(s, newTestCanvas())
	require.NoError(t, err)

	assert.Equal(t, PhaseResult, s.Phase)
	assert.Equal(t, OutcomeLost, s.Result)
}

func TestWinAtRequiredCatches(t *testing.T) {
	s := newTestState(newMemStore())
	startTestLevel(t, s, 1)

	for i := 0; i < s.Level.RequiredCatches; i++ {
		s.Session.RecordCatch(200 * time.Millisecond)
	}

	err := updatePlaying(s, newTestCanvas())
	require.NoError(t, err)

	assert.Equal(t, PhaseResult, s.Phase)
	assert.Equal(t, OutcomeWon, s.Result)
}
