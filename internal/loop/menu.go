package loop

import (
	"github.com/tomz197/focuscatcher/internal/level"
)

// Main menu entries, in display order.
const (
	menuStart = iota
	menuProgress
	menuQuit
	menuEntryCount
)

var menuLabels = [menuEntryCount]string{"Start Game", "Progress Report", "Quit"}

// levelGridCols is the level-select grid width.
const levelGridCols = 5

// navPressed reports whether a navigation action fired this frame,
// edge-triggering held keys via the shared nav cooldown.
func navPressed(s *State, pressed bool) bool {
	if !pressed || s.navCooldown > 0 {
		return false
	}
	s.navCooldown = NavCooldownSeconds
	return true
}

func updateMenu(s *State) {
	switch {
	case navPressed(s, s.Input.Up):
		s.MenuIndex = (s.MenuIndex + menuEntryCount - 1) % menuEntryCount
	case navPressed(s, s.Input.Down):
		s.MenuIndex = (s.MenuIndex + 1) % menuEntryCount
	case navPressed(s, s.Input.Enter || s.Input.Space):
		switch s.MenuIndex {
		case menuStart:
			s.Phase = PhaseLevelSelect
		case menuProgress:
			s.loadHistory()
			s.Phase = PhaseProgress
		case menuQuit:
			s.Running = false
		}
	}
}

func updateLevelSelect(s *State) {
	count := level.Count()

	switch {
	case navPressed(s, s.Input.Escape):
		s.Phase = PhaseMenu
	case navPressed(s, s.Input.Left):
		s.LevelIdx = (s.LevelIdx + count - 1) % count
	case navPressed(s, s.Input.Right):
		s.LevelIdx = (s.LevelIdx + 1) % count
	case navPressed(s, s.Input.Up):
		if s.LevelIdx >= levelGridCols {
			s.LevelIdx -= levelGridCols
		}
	case navPressed(s, s.Input.Down):
		if s.LevelIdx+levelGridCols < count {
			s.LevelIdx += levelGridCols
		}
	case navPressed(s, s.Input.Number >= 0):
		// 1-9 select directly, 0 selects level 10.
		n := s.Input.Number
		if n == 0 {
			n = 10
		}
		if n <= count {
			s.LevelIdx = n - 1
		}
	case navPressed(s, s.Input.Enter || s.Input.Space):
		cfg, ok := level.ByNumber(s.LevelIdx + 1)
		if ok && s.LevelUnlocked(cfg.Number) {
			startLevel(s, cfg)
		}
	}
}

func updatePaused(s *State) {
	switch {
	case navPressed(s, s.Input.Escape || s.Input.Enter || s.Input.Space):
		s.Phase = PhasePlaying
	case navPressed(s, s.Input.Quit):
		abandonSession(s)
		s.navCooldown = NavCooldownSeconds
		s.Phase = PhaseMenu
	}
}

func updateResult(s *State) {
	switch {
	case navPressed(s, s.Input.Enter || s.Input.Space):
		// Replay the same level.
		if cfg, ok := level.ByNumber(s.Level.Number); ok {
			startLevel(s, cfg)
		}
	case navPressed(s, s.Input.Escape):
		abandonSession(s)
		s.Phase = PhaseLevelSelect
	}
}

func updateProgress(s *State) {
	if navPressed(s, s.Input.Escape || s.Input.Enter) {
		s.Phase = PhaseMenu
	}
}
