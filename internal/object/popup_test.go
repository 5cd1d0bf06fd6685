package object

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/focuscatcher/internal/draw"
)

func TestScorePopupFormatsDelta(t *testing.T) {
	assert.Equal(t, "+10", NewScorePopup(10, 10, 10, draw.ColorGreen).Value)
	assert.Equal(t, "-5", NewScorePopup(10, 10, -5, draw.ColorRed).Value)
}

func TestScorePopupRisesAndExpires(t *testing.T) {
	now := time.Now()
	p := NewScorePopup(20, 30, 10, draw.ColorGreen)

	remove, err := p.Update(testCtx(now, 100*time.Millisecond, nil))
	require.NoError(t, err)
	assert.False(t, remove)
	assert.InDelta(t, 30-popupRiseSpeed*0.1, p.Y, 1e-9)

	remove, err = p.Update(testCtx(now, time.Second, nil))
	require.NoError(t, err)
	assert.True(t, remove, "popup must expire after its lifetime")
}

func TestScorePopupDraw(t *testing.T) {
	canvas := draw.NewScaledCanvas(40, 20, 120, 80)
	var buf bytes.Buffer
	p := NewScorePopup(60, 40, 10, draw.ColorGreen)

	require.NoError(t, p.Draw(DrawContext{Canvas: canvas, Writer: &buf}))
	out := buf.String()
	assert.Contains(t, out, "+10")
	assert.Contains(t, out, draw.ColorGreen.Foreground())
	assert.Contains(t, out, draw.ResetColor)
}
