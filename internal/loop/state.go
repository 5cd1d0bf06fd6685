package loop

import (
	"time"

	"github.com/tomz197/focuscatcher/internal/input"
	"github.com/tomz197/focuscatcher/internal/level"
	"github.com/tomz197/focuscatcher/internal/object"
	"github.com/tomz197/focuscatcher/internal/progress"
	"github.com/tomz197/focuscatcher/internal/session"
)

// Phase represents the current game screen.
type Phase int

const (
	PhaseMenu        Phase = iota // Title screen
	PhaseLevelSelect              // Level grid
	PhasePlaying                  // Active gameplay
	PhasePaused                   // Gameplay frozen
	PhaseResult                   // Session summary after win/lose
	PhaseProgress                 // Progress report
)

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
	OutcomeTimeUp
)

// State holds all game state for one player.
type State struct {
	// World
	Objects []object.Object
	toSpawn []object.Object // Objects to add after current update cycle
	Screen  object.Screen   // Logical play area
	Delta   time.Duration   // Frame delta time
	Now     time.Time       // Frame timestamp

	// Input
	Input       object.Input
	InputStream *input.Stream

	// Phase and navigation
	Phase     Phase
	prevPhase Phase // For full-clear on phase transitions
	MenuIndex int   // Highlighted main menu entry
	LevelIdx  int   // Highlighted level on the select grid

	// Current play-through
	Level   level.Config
	Session *session.Session
	Cursor  *object.Cursor
	Result  Outcome

	// Persistence
	Store      progress.Store
	Reporter   *progress.Reporter
	LevelStats map[int]progress.LevelProgress

	// Session history cached when the progress report opens.
	history []session.Session

	// Cooldowns (seconds remaining)
	catchCooldown float64
	navCooldown   float64

	// Background scroll
	backgroundOffset float64

	Running     bool
	isInactive  bool
	wasInactive bool
}

// NewState creates an initialized game state. store and reporter may be nil.
func NewState(store progress.Store, reporter *progress.Reporter) *State {
	s := &State{
		Objects:    []object.Object{},
		Phase:      PhaseMenu,
		Store:      store,
		Reporter:   reporter,
		LevelStats: map[int]progress.LevelProgress{},
		Running:    true,
	}
	s.reloadStats()
	return s
}

// loadHistory refreshes the cached session history for the progress report.
func (s *State) loadHistory() {
	s.history = nil
	if s.Store == nil {
		return
	}
	if sessions, err := s.Store.Sessions(); err == nil {
		s.history = sessions
	}
}

// reloadStats refreshes the cached per-level records from the store.
func (s *State) reloadStats() {
	if s.Store == nil {
		return
	}
	if stats, err := s.Store.Levels(); err == nil {
		s.LevelStats = stats
	}
}

// BestAccuracy returns the stored best accuracy for a level, 0 if unplayed.
func (s *State) BestAccuracy(n int) float64 {
	return s.LevelStats[n].BestAccuracy
}

// LevelUnlocked reports whether a level can be played.
func (s *State) LevelUnlocked(n int) bool {
	return level.Unlocked(n, s.BestAccuracy)
}

// AddObject adds an object to the game world.
func (s *State) AddObject(obj object.Object) {
	s.Objects = append(s.Objects, obj)
}

// Spawn queues an object to be added after the current update cycle.
// Implements object.Spawner.
func (s *State) Spawn(obj object.Object) {
	s.toSpawn = append(s.toSpawn, obj)
}

// FlushSpawned adds all queued objects to the game and clears the queue.
func (s *State) FlushSpawned() {
	s.Objects = append(s.Objects, s.toSpawn...)
	s.toSpawn = s.toSpawn[:0]
}

// UpdateContext creates an UpdateContext from the current state.
func (s *State) UpdateContext() object.UpdateContext {
	return object.UpdateContext{
		Delta:   s.Delta,
		Now:     s.Now,
		Input:   s.Input,
		Screen:  s.Screen,
		Spawner: s,
		Objects: s.Objects,
	}
}
