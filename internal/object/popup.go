package object

import (
	"fmt"

	"github.com/tomz197/focuscatcher/internal/draw"
)

const (
	popupLifetime  = 0.8
	popupRiseSpeed = 4.0
)

// ScorePopup is a short-lived score delta shown where a catch landed.
// It drifts upward and disappears after popupLifetime seconds.
type ScorePopup struct {
	X     float64
	Y     float64
	Value string
	Color draw.Color

	age float64
}

// NewScorePopup creates a popup for a score delta at logical (x, y).
func NewScorePopup(x, y float64, delta int, color draw.Color) *ScorePopup {
	return &ScorePopup{
		X:     x,
		Y:     y,
		Value: fmt.Sprintf("%+d", delta),
		Color: color,
	}
}

// Update drifts the popup upward and removes it once its lifetime passes.
func (p *ScorePopup) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()
	p.age += dt
	if p.age >= popupLifetime {
		return true, nil
	}
	p.Y -= popupRiseSpeed * dt
	return false, nil
}

// Draw writes the popup as a text overlay at its terminal cell.
// Canvas cells rendered afterwards may cover part of it.
func (p *ScorePopup) Draw(ctx DrawContext) error {
	col, row := ctx.Canvas.LogicalToTerminal(p.X, p.Y)
	col += ctx.Canvas.OffsetCol() - len(p.Value)/2
	row += ctx.Canvas.OffsetRow()
	if col < 1 {
		col = 1
	}
	if row < 1 {
		row = 1
	}
	_, err := fmt.Fprintf(ctx.Writer, "\033[%d;%dH%s%s%s",
		row, col, p.Color.Foreground(), p.Value, draw.ResetColor)
	return err
}
