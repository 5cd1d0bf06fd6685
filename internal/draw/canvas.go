package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Canvas is a color drawing buffer with 2x vertical resolution using
// half-block characters. Supports scaling from logical coordinates to
// actual terminal pixels.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x], ColorNone if empty

	// Scaling from logical to pixel coordinates
	logicalWidth  float64 // Target/logical width
	logicalHeight float64 // Target/logical height (in sub-pixels)
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when the terminal is larger
	// than the max resolution. 0-based terminal offsets.
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder // Buffer for batching render output
	scaledBuf       []Point         // Reusable buffer for fillPolygon scaled points
	intersectionBuf []float64       // Reusable buffer for scanline intersections
	polygonBuf      []Point         // Reusable buffer for polygon point generation
}

// NewCanvas creates a canvas for the given terminal dimensions with a
// 1:1 logical mapping.
func NewCanvas(width, height int) *Canvas {
	return NewScaledCanvas(width, height, float64(width), float64(height*2))
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to
// terminal pixels. logicalWidth/Height define the coordinate space used by
// game objects; termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	subPixelHeight := termHeight * 2
	return &Canvas{
		termWidth:      termWidth,
		termHeight:     termHeight,
		subPixelHeight: subPixelHeight,
		pixels:         make([]Color, subPixelHeight*termWidth),
		logicalWidth:   logicalWidth,
		logicalHeight:  logicalHeight,
		scaleX:         float64(termWidth) / logicalWidth,
		scaleY:         float64(subPixelHeight) / logicalHeight,
	}
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]Color, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, color Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = color
	}
}

// SetFloat sets a pixel using float logical coordinates (applies scaling).
func (c *Canvas) SetFloat(x, y float64, color Color) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	c.setPixel(px, py, color)
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, color Color) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, color)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon on the canvas.
// If fill is set (not ColorNone) the interior is filled with it using a
// scanline algorithm; the outline is always drawn in the outline color.
func (c *Canvas) DrawPolygon(points []Point, outline, fill Color) {
	if len(points) < 3 {
		return
	}

	if fill != ColorNone {
		c.fillPolygon(points, fill)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], outline)
	}
}

// DrawCircle draws a circle outline centered at (cx, cy) with the given
// logical radius. The canvas's 2x vertical resolution keeps logical units
// roughly square, so no aspect correction is applied.
func (c *Canvas) DrawCircle(cx, cy, radius float64, color Color) {
	// Enough segments that the largest circles stay smooth.
	steps := int(math.Max(12, radius*8))
	for i := 0; i < steps; i++ {
		a := float64(i) * 2 * math.Pi / float64(steps)
		c.SetFloat(cx+math.Cos(a)*radius, cy+math.Sin(a)*radius, color)
	}
}

// FillCircle draws a filled circle centered at (cx, cy).
func (c *Canvas) FillCircle(cx, cy, radius float64, color Color) {
	step := 0.5 / c.scaleY
	if step <= 0 {
		step = 0.5
	}
	for dy := -radius; dy <= radius; dy += step {
		half := radius*radius - dy*dy
		if half < 0 {
			continue
		}
		span := math.Sqrt(half)
		c.DrawLine(Point{X: cx - span, Y: cy + dy}, Point{X: cx + span, Y: cy + dy}, color)
	}
}

// fillPolygon fills a polygon using a scanline algorithm in pixel space.
func (c *Canvas) fillPolygon(points []Point, color Color) {
	// Reuse or grow scaled points buffer
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = Point{
			X: p.X * c.scaleX,
			Y: p.Y * c.scaleY,
		}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				x := p1.X + t*(p2.X-p1.X)
				intersections = append(intersections, x)
			}
		}

		// Store back in case it grew
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, color)
			}
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for smooth network flow.
// 1400 bytes stays under typical MTU size for SSH transmission.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using colored half-block characters.
// When the top and bottom sub-pixels of a cell differ, the top is drawn as
// the foreground of '▀' and the bottom as its background.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 16)

	var lastFg, lastBg Color = ColorNone, ColorNone

	for row := 0; row < c.termHeight; row++ {
		topY := row * 2
		bottomY := row*2 + 1
		topOffset := topY * c.termWidth
		bottomOffset := bottomY * c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			var bottom Color
			if bottomY < c.subPixelHeight {
				bottom = c.pixels[bottomOffset+col]
			}

			var ch rune
			var fg, bg Color
			switch {
			case top != ColorNone && bottom != ColorNone && top == bottom:
				ch, fg, bg = BlockFull, top, ColorNone
			case top != ColorNone && bottom != ColorNone:
				ch, fg, bg = BlockUpperHalf, top, bottom
			case top != ColorNone:
				ch, fg, bg = BlockUpperHalf, top, ColorNone
			case bottom != ColorNone:
				ch, fg, bg = BlockLowerHalf, bottom, ColorNone
			default:
				continue // Skip empty cells
			}

			c.renderBuf.WriteString("\033[")
			c.renderBuf.WriteString(strconv.Itoa(row + 1 + c.offsetRow))
			c.renderBuf.WriteByte(';')
			c.renderBuf.WriteString(strconv.Itoa(col + 1 + c.offsetCol))
			c.renderBuf.WriteByte('H')

			if fg != lastFg || bg != lastBg {
				if bg == ColorNone {
					c.renderBuf.WriteString(ResetColor)
					c.renderBuf.WriteString(fg.Foreground())
				} else {
					c.renderBuf.WriteString(fg.Foreground())
					c.renderBuf.WriteString(bg.Background())
				}
				lastFg, lastBg = fg, bg
			}
			c.renderBuf.WriteRune(ch)
		}
	}

	c.renderBuf.WriteString(ResetColor)

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	buf.Grow((c.termWidth+2)*2 + c.termHeight*2*12)

	if hasV {
		if hasH {
			buf.WriteString("\033[" + strconv.Itoa(top) + ";" + strconv.Itoa(left) + "H┌" + strings.Repeat("─", c.termWidth) + "┐")
			buf.WriteString("\033[" + strconv.Itoa(bottom) + ";" + strconv.Itoa(left) + "H└" + strings.Repeat("─", c.termWidth) + "┘")
		} else {
			buf.WriteString("\033[" + strconv.Itoa(top) + ";" + strconv.Itoa(c.offsetCol+1) + "H" + strings.Repeat("─", c.termWidth))
			buf.WriteString("\033[" + strconv.Itoa(bottom) + ";" + strconv.Itoa(c.offsetCol+1) + "H" + strings.Repeat("─", c.termWidth))
		}
	}

	if hasH {
		startRow := top + 1
		endRow := bottom
		if !hasV {
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			buf.WriteString("\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(left) + "H│")
			buf.WriteString("\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(right) + "H│")
		}
	}

	io.WriteString(w, buf.String())
}

// LogicalWidth returns the logical width (target resolution).
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height (target resolution, in sub-pixels).
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based terminal
// position (col, row). Useful for placing text overlays at positions
// matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

// TerminalToLogical converts a 1-based terminal position to logical
// coordinates, the inverse of LogicalToTerminal. Used to map mouse click
// cells back into the game's coordinate space.
func (c *Canvas) TerminalToLogical(col, row int) (x, y float64) {
	px := float64(col - 1 - c.offsetCol)
	py := float64((row-1-c.offsetRow)*2) + 1 // Sample at cell center
	return px / c.scaleX, py / c.scaleY
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
// Thread-safe as long as each goroutine uses its own Canvas instance.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}
