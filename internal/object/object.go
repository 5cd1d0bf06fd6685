package object

import (
	"io"
	"time"

	"github.com/tomz197/focuscatcher/internal/draw"
	"github.com/tomz197/focuscatcher/internal/input"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Now     time.Time
	Input   Input
	Screen  Screen
	Spawner Spawner
	Objects []Object
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas // High-resolution canvas (2x vertical)
	Writer io.Writer    // Direct terminal output (for text overlays)
}

// Screen represents the logical play area.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// Clamp constrains x and y to the play area.
func (s Screen) Clamp(x, y *float64) {
	if *x < 0 {
		*x = 0
	} else if w := float64(s.Width); *x > w {
		*x = w
	}
	if *y < 0 {
		*y = 0
	} else if h := float64(s.Height); *y > h {
		*y = h
	}
}

// Outside reports whether a circle at (x, y) with the given radius lies
// fully beyond the play area.
func (s Screen) Outside(x, y, radius float64) bool {
	return x < -radius || x > float64(s.Width)+radius ||
		y < -radius || y > float64(s.Height)+radius
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update updates the object state. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object. Use ctx.Canvas for shapes, ctx.Writer for text.
	Draw(ctx DrawContext) error
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// FilterShapes returns all Shape objects from the given object slice.
func FilterShapes(objects []Object) []*Shape {
	var shapes []*Shape
	for _, obj := range objects {
		if s, ok := obj.(*Shape); ok {
			shapes = append(shapes, s)
		}
	}
	return shapes
}
