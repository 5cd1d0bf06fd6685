// Package level defines the built-in level configurations and the
// unlock/completion rules.
package level

import (
	"time"

	"github.com/tomz197/focuscatcher/internal/object"
)

// UnlockAccuracy is the best-accuracy percentage that marks a level as
// completed and unlocks the next one.
const UnlockAccuracy = 70.0

// Config defines one play session: what spawns, how fast, and what it
// takes to win.
type Config struct {
	Number          int
	Name            string
	Description     string
	TargetKind      object.Kind
	DistractorKinds []object.Kind
	SpawnRate       float64       // Shapes per second
	Lifespan        time.Duration // How long a shape stays before expiring
	TargetRatio     float64       // 0-1, share of spawns that are targets
	MaxShapes       int           // Max simultaneous shapes
	RequiredCatches int           // Correct catches needed to win
	MaxMisses       int           // Lives; losing them all ends the session
	BackgroundSpeed float64       // Background pattern scroll, units/sec
	TimeLimit       time.Duration // 0 means unlimited
}

// SpawnConfig converts the level tuning into the spawner's config.
func (c Config) SpawnConfig() object.SpawnConfig {
	return object.SpawnConfig{
		TargetKind:      c.TargetKind,
		DistractorKinds: c.DistractorKinds,
		Rate:            c.SpawnRate,
		Lifespan:        c.Lifespan,
		TargetRatio:     c.TargetRatio,
		MaxShapes:       c.MaxShapes,
	}
}

// configs holds the ten built-in levels, ordered easy to hard.
var configs = []Config{
	{1, "Star Gazing", "Catch only the bright stars!", object.KindStar,
		[]object.Kind{object.KindCircle},
		0.5, 4000 * time.Millisecond, 0.7, 3, 10, 3, 0, 0},
	{2, "Balloon Pop", "Pop the bright balloons only!", object.KindBalloon,
		[]object.Kind{object.KindCircle, object.KindTriangle},
		0.7, 3500 * time.Millisecond, 0.6, 4, 12, 3, 10, 0},
	{3, "Heart Hunt", "Find the hearts among the shapes!", object.KindHeart,
		[]object.Kind{object.KindStar, object.KindCircle, object.KindTriangle},
		0.8, 3000 * time.Millisecond, 0.5, 5, 15, 4, 15, 0},
	{4, "Shape Shifter", "Quick! Catch the triangles!", object.KindTriangle,
		[]object.Kind{object.KindStar, object.KindCircle, object.KindHeart, object.KindBalloon},
		1.0, 2800 * time.Millisecond, 0.4, 6, 18, 4, 20, 0},
	{5, "Circle Challenge", "Focus on circles only!", object.KindCircle,
		[]object.Kind{object.KindStar, object.KindTriangle, object.KindHeart, object.KindBalloon},
		1.2, 2500 * time.Millisecond, 0.35, 7, 20, 5, 25, 0},
	{6, "Speed Stars", "Catch the fast-moving stars!", object.KindStar,
		[]object.Kind{object.KindCircle, object.KindTriangle, object.KindHeart, object.KindBalloon},
		1.5, 2200 * time.Millisecond, 0.3, 8, 22, 5, 30, 0},
	{7, "Balloon Bonanza", "Pop balloons in the chaos!", object.KindBalloon,
		[]object.Kind{object.KindStar, object.KindCircle, object.KindTriangle, object.KindHeart},
		1.8, 2000 * time.Millisecond, 0.25, 9, 25, 6, 35, 0},
	{8, "Heart Rush", "Find hearts in the storm!", object.KindHeart,
		[]object.Kind{object.KindStar, object.KindCircle, object.KindTriangle, object.KindBalloon},
		2.0, 1800 * time.Millisecond, 0.2, 10, 28, 6, 40, 0},
	{9, "Triangle Tornado", "Triangles in the whirlwind!", object.KindTriangle,
		[]object.Kind{object.KindStar, object.KindCircle, object.KindHeart, object.KindBalloon},
		2.5, 1600 * time.Millisecond, 0.18, 12, 30, 7, 45, 0},
	{10, "Master Focus", "Ultimate attention challenge!", object.KindStar,
		[]object.Kind{object.KindCircle, object.KindTriangle, object.KindHeart, object.KindBalloon},
		3.0, 1400 * time.Millisecond, 0.15, 15, 35, 8, 50, 60 * time.Second},
}

// All returns the built-in level configurations in order.
func All() []Config {
	return configs
}

// Count returns the number of built-in levels.
func Count() int {
	return len(configs)
}

// ByNumber returns the config for the given level number, or false if no
// such level exists.
func ByNumber(n int) (Config, bool) {
	for _, c := range configs {
		if c.Number == n {
			return c, true
		}
	}
	return Config{}, false
}

// Completed reports whether a level with the given best accuracy counts
// as completed.
func Completed(bestAccuracy float64) bool {
	return bestAccuracy >= UnlockAccuracy
}

// Unlocked reports whether level n is playable. Level 1 always is; any
// other level requires the preceding level to be completed. bestAccuracy
// returns the stored best accuracy for a level (0 when never played).
func Unlocked(n int, bestAccuracy func(level int) float64) bool {
	if n == 1 {
		return true
	}
	if _, ok := ByNumber(n); !ok {
		return false
	}
	return Completed(bestAccuracy(n - 1))
}
