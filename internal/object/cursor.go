package object

import (
	"github.com/tomz197/focuscatcher/internal/draw"
)

// cursorSpeed is how fast the crosshair moves, in logical units per second.
const cursorSpeed = 45.0

// Cursor is the player's crosshair. It moves with the arrow keys (or WASD)
// and marks where a Space press attempts a catch; mouse clicks bypass it.
type Cursor struct {
	X, Y float64
	arm  float64 // Crosshair arm length
}

// NewCursor creates a cursor at the given position.
func NewCursor(x, y float64) *Cursor {
	return &Cursor{X: x, Y: y, arm: 2.0}
}

// GetPosition returns the cursor's position.
func (c *Cursor) GetPosition() (float64, float64) {
	return c.X, c.Y
}

// MoveTo places the cursor at the given position, clamped by the caller.
func (c *Cursor) MoveTo(x, y float64) {
	c.X = x
	c.Y = y
}

// Update moves the cursor according to held direction keys and clamps it
// to the play area.
func (c *Cursor) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	if ctx.Input.Left {
		c.X -= cursorSpeed * dt
	}
	if ctx.Input.Right {
		c.X += cursorSpeed * dt
	}
	if ctx.Input.Up {
		c.Y -= cursorSpeed * dt
	}
	if ctx.Input.Down {
		c.Y += cursorSpeed * dt
	}

	ctx.Screen.Clamp(&c.X, &c.Y)

	return false, nil
}

// Draw renders the crosshair with a gap at the center so the shape under
// it stays visible.
func (c *Cursor) Draw(ctx DrawContext) error {
	const gap = 0.75

	ctx.Canvas.DrawLine(
		draw.Point{X: c.X - c.arm, Y: c.Y},
		draw.Point{X: c.X - gap, Y: c.Y},
		draw.ColorWhite,
	)
	ctx.Canvas.DrawLine(
		draw.Point{X: c.X + gap, Y: c.Y},
		draw.Point{X: c.X + c.arm, Y: c.Y},
		draw.ColorWhite,
	)
	ctx.Canvas.DrawLine(
		draw.Point{X: c.X, Y: c.Y - c.arm},
		draw.Point{X: c.X, Y: c.Y - gap},
		draw.ColorWhite,
	)
	ctx.Canvas.DrawLine(
		draw.Point{X: c.X, Y: c.Y + gap},
		draw.Point{X: c.X, Y: c.Y + c.arm},
		draw.ColorWhite,
	)

	return nil
}
