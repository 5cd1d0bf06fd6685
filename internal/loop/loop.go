package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/tomz197/focuscatcher/internal/draw"
	"github.com/tomz197/focuscatcher/internal/input"
	"github.com/tomz197/focuscatcher/internal/object"
	"github.com/tomz197/focuscatcher/internal/progress"
)

// Options configures a game run.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // nil means os.Stdout size
	Store        progress.Store    // nil disables persistence
	Reporter     *progress.Reporter
	Inactivity   bool // Enable inactivity warning/disconnect (SSH sessions)
}

// Game drives one player's session: input, per-phase updates, rendering.
type Game struct {
	state        *State
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	writer       io.Writer
	termSizeFunc draw.TermSizeFunc
	inactivity   bool
	lastInput    time.Time
}

// NewGame creates a game reading input from r and rendering to w.
func NewGame(r *bufio.Reader, w io.Writer, opts Options) *Game {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}

	state := NewState(opts.Store, opts.Reporter)
	state.InputStream = input.StartStream(r)
	state.Screen = object.Screen{
		Width:   ViewWidth,
		Height:  ViewHeight,
		CenterX: ViewWidth / 2,
		CenterY: ViewHeight / 2,
	}

	termWidth, termHeight, _ := draw.TerminalSizeWith(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, ViewWidth, ViewHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Game{
		state:        state,
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		termSizeFunc: termSizeFunc,
		inactivity:   opts.Inactivity,
		lastInput:    time.Now(),
	}
}

// Run starts the game loop with the standard Input → Update → Draw cycle.
// Blocks until the player quits or is disconnected for inactivity.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	return NewGame(r, w, opts).Run()
}

// Run executes the loop.
func (g *Game) Run() error {
	draw.HideCursor(g.writer)
	draw.EnableMouse(g.writer)
	defer func() {
		draw.DisableMouse(g.writer)
		draw.ShowCursor(g.writer)
		draw.ClearScreen(g.writer)
	}()
	draw.ClearScreen(g.writer)

	lastTime := time.Now()

	for g.state.Running {
		frameStart := time.Now()
		g.state.Delta = frameStart.Sub(lastTime)
		g.state.Now = frameStart
		lastTime = frameStart

		// ===== INPUT PHASE =====
		g.processInput()

		// ===== UPDATE PHASE =====
		g.updateScreen()
		g.tickCooldowns()

		switch g.state.Phase {
		case PhaseMenu:
			updateMenu(g.state)
		case PhaseLevelSelect:
			updateLevelSelect(g.state)
		case PhasePlaying:
			if err := updatePlaying(g.state, g.canvas); err != nil {
				return err
			}
		case PhasePaused:
			updatePaused(g.state)
		case PhaseResult:
			updateResult(g.state)
		case PhaseProgress:
			updateProgress(g.state)
		}

		// ===== DRAW PHASE =====
		if err := g.drawFrame(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < TargetFrameTime {
			time.Sleep(TargetFrameTime - elapsed)
		}
	}

	return nil
}

// processInput reads pending input and handles quit and inactivity.
func (g *Game) processInput() {
	g.state.Input = input.ReadInput(g.state.InputStream)

	if g.inactivity {
		if len(g.state.Input.Pressed) > 0 || len(g.state.Input.Clicks) > 0 {
			g.lastInput = g.state.Now
			g.state.isInactive = false
		} else if time.Since(g.lastInput).Seconds() > InactivityDisconnectSeconds {
			g.state.Running = false
		} else if time.Since(g.lastInput).Seconds() > InactivityWarnSeconds {
			g.state.isInactive = true
		}
	}

	// Q quits from the menus. During play it is ignored, and while
	// paused it returns to the menu instead.
	if g.state.Input.Quit && g.state.Phase != PhasePlaying && g.state.Phase != PhasePaused {
		g.state.Running = false
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
func (g *Game) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeWith(g.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != g.canvas.TerminalWidth() || renderHeight != g.canvas.TerminalHeight() ||
		offsetCol != g.canvas.OffsetCol() || offsetRow != g.canvas.OffsetRow() {
		draw.ClearScreen(g.writer)
	}

	g.canvas.Resize(renderWidth, renderHeight)
	g.canvas.SetOffset(offsetCol, offsetRow)
	g.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// tickCooldowns decrements the input cooldown timers.
func (g *Game) tickCooldowns() {
	dt := g.state.Delta.Seconds()
	if g.state.catchCooldown > 0 {
		g.state.catchCooldown -= dt
	}
	if g.state.navCooldown > 0 {
		g.state.navCooldown -= dt
	}
}

// drawFrame clears the canvas, draws all objects and the phase UI overlay.
func (g *Game) drawFrame() error {
	// Full clear on phase or inactivity transitions so stale UI never lingers.
	if g.state.Phase != g.state.prevPhase || g.state.isInactive != g.state.wasInactive {
		g.chunkWriter.WriteString("\033[H\033[2J")
		g.state.prevPhase = g.state.Phase
		g.state.wasInactive = g.state.isInactive
	}

	g.canvas.Clear()

	if g.state.Phase == PhasePlaying || g.state.Phase == PhasePaused {
		drawBackdrop(g.state, g.canvas)

		ctx := object.DrawContext{Canvas: g.canvas, Writer: g.chunkWriter}
		for _, obj := range g.state.Objects {
			if err := obj.Draw(ctx); err != nil {
				return err
			}
		}
	}

	g.canvas.Render(g.chunkWriter)
	g.canvas.RenderBorder(g.chunkWriter)

	drawUI(g.state, g.chunkWriter, g.canvas, g.lastInput)

	return g.chunkWriter.Flush()
}

// clampTermSize clamps terminal dimensions to the max render resolution and
// computes the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if renderWidth > MaxTermWidth {
		renderWidth = MaxTermWidth
	}
	if renderHeight > MaxTermHeight {
		renderHeight = MaxTermHeight
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
