package object

import (
	"math/rand"
	"time"

	"github.com/tomz197/focuscatcher/internal/physics"
)

// spawnMargin keeps new shapes away from the play-area edges, in logical units.
const spawnMargin = 6.0

// spawnSpacing is the preferred minimum center distance between a new shape
// and existing ones. Placement falls back to a random spot when the area is
// crowded.
const spawnSpacing = 8.0

// spawnAttempts is how many candidate positions are tried per spawn.
const spawnAttempts = 8

// SpawnConfig describes how a level populates the play area.
type SpawnConfig struct {
	TargetKind      Kind
	DistractorKinds []Kind
	Rate            float64       // Shapes per second
	Lifespan        time.Duration // How long a shape stays on screen
	TargetRatio     float64       // 0-1, chance a spawn is a target
	MaxShapes       int           // Max simultaneous shapes
}

// ShapeSpawner keeps the shape population fed according to a level's config.
// It lives in the object list like any other object but draws nothing.
type ShapeSpawner struct {
	cfg       SpawnConfig
	lastSpawn time.Time
	grid      *physics.SpatialGrid
}

// NewShapeSpawner creates a spawner for the given config and play area.
func NewShapeSpawner(cfg SpawnConfig, screen Screen) *ShapeSpawner {
	if cfg.MaxShapes < 1 {
		cfg.MaxShapes = 1
	}
	return &ShapeSpawner{
		cfg:  cfg,
		grid: physics.NewSpatialGrid(float64(screen.Width), float64(screen.Height), spawnSpacing),
	}
}

// Update spawns a shape when the interval has elapsed and the population
// is below the cap.
func (sp *ShapeSpawner) Update(ctx UpdateContext) (bool, error) {
	if sp.cfg.Rate <= 0 || ctx.Spawner == nil {
		return false, nil
	}

	shapes := sp.collectActive(ctx.Objects)
	if len(shapes) >= sp.cfg.MaxShapes {
		return false, nil
	}

	interval := time.Duration(float64(time.Second) / sp.cfg.Rate)
	if ctx.Now.Sub(sp.lastSpawn) < interval {
		return false, nil
	}
	sp.lastSpawn = ctx.Now

	isTarget := rand.Float64() < sp.cfg.TargetRatio
	kind := sp.cfg.TargetKind
	if !isTarget && len(sp.cfg.DistractorKinds) > 0 {
		kind = sp.cfg.DistractorKinds[rand.Intn(len(sp.cfg.DistractorKinds))]
	}

	x, y := sp.placeAway(ctx.Screen, shapes)
	ctx.Spawner.Spawn(NewShape(kind, x, y, isTarget, sp.cfg.Lifespan, ctx.Now))

	return false, nil
}

// Draw is a no-op; the spawner is not visible.
func (sp *ShapeSpawner) Draw(_ DrawContext) error {
	return nil
}

// collectActive returns the live (uncaught) shapes from the object list.
func (sp *ShapeSpawner) collectActive(objects []Object) []*Shape {
	var shapes []*Shape
	for _, obj := range objects {
		if s, ok := obj.(*Shape); ok && !s.IsCaught() {
			shapes = append(shapes, s)
		}
	}
	return shapes
}

// placeAway picks a random position inside the margins, preferring one
// that does not crowd an existing shape. Uses the spatial grid for the
// neighborhood check.
func (sp *ShapeSpawner) placeAway(screen Screen, shapes []*Shape) (float64, float64) {
	w := float64(screen.Width)
	h := float64(screen.Height)

	sp.grid.Clear()
	for i, s := range shapes {
		sp.grid.Insert(s.X, s.Y, i)
	}

	var x, y float64
	for attempt := 0; attempt < spawnAttempts; attempt++ {
		x = spawnMargin + rand.Float64()*(w-2*spawnMargin)
		y = spawnMargin + rand.Float64()*(h-2*spawnMargin)

		crowded := false
		sp.grid.QueryAround(x, y, func(i int) bool {
			if physics.DistanceSquared(x, y, shapes[i].X, shapes[i].Y) < spawnSpacing*spawnSpacing {
				crowded = true
				return true
			}
			return false
		})
		if !crowded {
			break
		}
	}
	return x, y
}
