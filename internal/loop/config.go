// Package loop runs the game: a fixed-timestep Input → Update → Draw cycle
// over menu, level-select, playing, paused and progress phases.
package loop

import "time"

// Logical resolution - game objects use these dimensions.
// Actual rendering scales to fit terminal size.
const (
	ViewWidth  = 120 // Logical width
	ViewHeight = 80  // Logical height (in sub-pixels, so 40 terminal rows)
)

// Max render resolution. Larger terminals get a centered, bordered canvas.
const (
	MaxTermWidth  = 120
	MaxTermHeight = 40
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Catching
const (
	CatchCooldownSeconds = 0.2 // Min seconds between Space catch attempts
	NavCooldownSeconds   = 0.15
)

// Background pattern
const (
	backdropSpacing = 12.0 // Logical units between pattern dots
)

// Inactivity (SSH sessions)
const (
	InactivityWarnSeconds       = 90
	InactivityDisconnectSeconds = 120
)
