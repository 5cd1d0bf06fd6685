package object

import (
	"math"
	"math/rand"
	"time"

	"github.com/tomz197/focuscatcher/internal/draw"
	"github.com/tomz197/focuscatcher/internal/physics"
)

// Kind identifies the visual form of a shape.
type Kind int

const (
	KindStar Kind = iota
	KindBalloon
	KindHeart
	KindCircle
	KindTriangle
)

// String returns the lowercase shape name.
func (k Kind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindBalloon:
		return "balloon"
	case KindHeart:
		return "heart"
	case KindCircle:
		return "circle"
	case KindTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Shape sizing and movement, in logical units.
const (
	shapeBaseRadius     = 3.0
	shapeRadiusVariance = 1.0
	shapeMaxVelocity    = 5.0
	breatheRate         = 0.5 // Scale change per second
	breatheMin          = 0.8
	breatheMax          = 1.2
)

// Shape is a spawned visual element the player must catch or ignore.
type Shape struct {
	Kind     Kind
	X, Y     float64 // Position (center)
	VX, VY   float64 // Velocity
	Radius   float64 // Base collision/draw radius
	IsTarget bool    // Whether catching it scores
	Color    draw.Color

	SpawnedAt time.Time
	Lifespan  time.Duration

	Rotation      float64 // Current rotation angle (radians)
	RotationSpeed float64 // Radians per second

	scale    float64 // Breathing scale, oscillates breatheMin..breatheMax
	scaleDir float64

	caught bool
}

// NewShape creates a shape at (x, y) with randomized size, color, velocity
// and rotation. Targets draw in bright colors, distractors in grays.
func NewShape(kind Kind, x, y float64, isTarget bool, lifespan time.Duration, now time.Time) *Shape {
	radius := shapeBaseRadius + (rand.Float64()-0.5)*shapeRadiusVariance

	var color draw.Color
	if isTarget {
		color = draw.TargetColors[rand.Intn(len(draw.TargetColors))]
	} else {
		color = draw.DistractorColors[rand.Intn(len(draw.DistractorColors))]
	}

	return &Shape{
		Kind:          kind,
		X:             x,
		Y:             y,
		VX:            (rand.Float64() - 0.5) * shapeMaxVelocity,
		VY:            (rand.Float64() - 0.5) * shapeMaxVelocity,
		Radius:        radius,
		IsTarget:      isTarget,
		Color:         color,
		SpawnedAt:     now,
		Lifespan:      lifespan,
		RotationSpeed: (rand.Float64() - 0.5) * 4.0,
		scale:         1.0,
		scaleDir:      1,
	}
}

// MarkCaught marks the shape for removal on the next update cycle.
func (s *Shape) MarkCaught() {
	s.caught = true
}

// IsCaught returns true if the shape has been caught.
func (s *Shape) IsCaught() bool {
	return s.caught
}

// Age returns how long the shape has been alive.
func (s *Shape) Age(now time.Time) time.Duration {
	return now.Sub(s.SpawnedAt)
}

// Expired returns true once the shape outlived its lifespan.
func (s *Shape) Expired(now time.Time) bool {
	return s.Age(now) > s.Lifespan
}

// Contains reports whether the point lies inside the shape's scaled radius.
func (s *Shape) Contains(px, py float64) bool {
	return physics.PointInCircle(px, py, s.X, s.Y, s.Radius*s.scale)
}

// Update moves the shape, animates rotation and breathing, and removes it
// when caught, expired, or fully off-screen. Caught shapes burst into
// particles before removal.
func (s *Shape) Update(ctx UpdateContext) (bool, error) {
	if s.caught {
		SpawnBurst(s.X, s.Y, s.Color, 8, 12.0, 0.4, ctx.Spawner)
		return true, nil
	}

	if s.Expired(ctx.Now) {
		return true, nil
	}

	dt := ctx.Delta.Seconds()

	s.X += s.VX * dt
	s.Y += s.VY * dt

	s.Rotation += s.RotationSpeed * dt

	// Breathing effect
	s.scale += s.scaleDir * dt * breatheRate
	if s.scale > breatheMax {
		s.scale = breatheMax
		s.scaleDir = -1
	} else if s.scale < breatheMin {
		s.scale = breatheMin
		s.scaleDir = 1
	}

	if ctx.Screen.Outside(s.X, s.Y, s.Radius) {
		return true, nil
	}

	return false, nil
}

// Draw renders the shape on the canvas. Targets get a white outline so the
// player can tell them from distractors by more than color alone.
func (s *Shape) Draw(ctx DrawContext) error {
	r := s.Radius * s.scale

	switch s.Kind {
	case KindStar:
		s.drawStar(ctx.Canvas, r)
	case KindBalloon:
		s.drawBalloon(ctx.Canvas, r)
	case KindHeart:
		s.drawHeart(ctx.Canvas, r)
	case KindCircle:
		ctx.Canvas.FillCircle(s.X, s.Y, r, s.Color)
		if s.IsTarget {
			ctx.Canvas.DrawCircle(s.X, s.Y, r, draw.ColorWhite)
		}
	case KindTriangle:
		s.drawTriangle(ctx.Canvas, r)
	}

	return nil
}

// drawStar renders a five-pointed star as a ten-vertex polygon.
func (s *Shape) drawStar(canvas *draw.Canvas, r float64) {
	const spikes = 5
	points := canvas.BorrowPoints(spikes * 2)

	inner := r * 0.4
	for i := 0; i < spikes*2; i++ {
		angle := s.Rotation + float64(i)*math.Pi/spikes
		radius := r
		if i%2 != 0 {
			radius = inner
		}
		points[i] = draw.Point{
			X: s.X + math.Cos(angle)*radius,
			Y: s.Y + math.Sin(angle)*radius,
		}
	}

	outline := s.Color
	if s.IsTarget {
		outline = draw.ColorWhite
	}
	canvas.DrawPolygon(points, outline, s.Color)
}

// drawBalloon renders a balloon body with a short string below it.
func (s *Shape) drawBalloon(canvas *draw.Canvas, r float64) {
	canvas.FillCircle(s.X, s.Y, r, s.Color)
	if s.IsTarget {
		canvas.DrawCircle(s.X, s.Y, r, draw.ColorWhite)
	}
	canvas.DrawLine(
		draw.Point{X: s.X, Y: s.Y + r},
		draw.Point{X: s.X, Y: s.Y + r + 2},
		draw.ColorDimGray,
	)
}

// drawHeart renders a simplified heart polygon.
func (s *Shape) drawHeart(canvas *draw.Canvas, r float64) {
	points := canvas.BorrowPoints(7)
	points[0] = draw.Point{X: s.X, Y: s.Y + r}           // Bottom tip
	points[1] = draw.Point{X: s.X - r, Y: s.Y}           // Left
	points[2] = draw.Point{X: s.X - r, Y: s.Y - r*0.5}   // Left top
	points[3] = draw.Point{X: s.X - r*0.5, Y: s.Y - r}   // Left lobe
	points[4] = draw.Point{X: s.X, Y: s.Y - r*0.25}      // Dip
	points[5] = draw.Point{X: s.X + r*0.5, Y: s.Y - r}   // Right lobe
	points[6] = draw.Point{X: s.X + r, Y: s.Y}           // Right

	outline := s.Color
	if s.IsTarget {
		outline = draw.ColorWhite
	}
	canvas.DrawPolygon(points, outline, s.Color)
}

// drawTriangle renders an equilateral triangle.
func (s *Shape) drawTriangle(canvas *draw.Canvas, r float64) {
	points := canvas.BorrowPoints(3)
	for i := 0; i < 3; i++ {
		angle := s.Rotation - math.Pi/2 + float64(i)*2*math.Pi/3
		points[i] = draw.Point{
			X: s.X + math.Cos(angle)*r,
			Y: s.Y + math.Sin(angle)*r,
		}
	}

	outline := s.Color
	if s.IsTarget {
		outline = draw.ColorWhite
	}
	canvas.DrawPolygon(points, outline, s.Color)
}
