package loop

import (
	"fmt"
	"time"

	"github.com/tomz197/focuscatcher/internal/draw"
	"github.com/tomz197/focuscatcher/internal/level"
)

// drawUI draws the text overlay for the current phase.
func drawUI(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas, lastInput time.Time) {
	termWidth := canvas.TerminalWidth()
	termHeight := canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch state.Phase {
	case PhaseMenu:
		drawMenuScreen(state, cw, centerX, centerY)
	case PhaseLevelSelect:
		drawLevelSelectScreen(state, cw, centerX, centerY)
	case PhasePlaying:
		drawPlayingHUD(state, cw, termWidth, termHeight)
	case PhasePaused:
		drawPlayingHUD(state, cw, termWidth, termHeight)
		drawPausedOverlay(cw, centerX, centerY)
	case PhaseResult:
		drawResultScreen(state, cw, centerX, centerY)
	case PhaseProgress:
		drawProgressScreen(state, cw, centerX, centerY)
	}

	if state.isInactive {
		drawInactivityWarning(cw, centerX, termHeight, lastInput)
	}
}

// writeCentered writes s horizontally centered on the given row.
func writeCentered(cw *draw.ChunkWriter, centerX, row int, s string) {
	cw.WriteAt(centerX-len(s)/2, row, s)
}

// writeCenteredColored writes s centered on the row in the given color.
func writeCenteredColored(cw *draw.ChunkWriter, centerX, row int, color draw.Color, s string) {
	cw.WriteColoredAt(centerX-len(s)/2, row, color, s)
}

// drawMenuScreen draws the title screen with the main menu.
func drawMenuScreen(state *State, cw *draw.ChunkWriter, centerX, centerY int) {
	title := "F O C U S   C A T C H E R"
	writeCenteredColored(cw, centerX, centerY-6, draw.ColorYellow, title)

	subtitle := "Catch the targets. Ignore the rest."
	writeCenteredColored(cw, centerX, centerY-4, draw.ColorGray, subtitle)

	for i, label := range menuLabels {
		row := centerY - 1 + i*2
		if i == state.MenuIndex {
			writeCenteredColored(cw, centerX, row, draw.ColorGreen, "> "+label+" <")
		} else {
			writeCentered(cw, centerX, row, label)
		}
	}

	controls := "Arrows/WASD to move, SPACE or mouse click to catch, ESC to pause, Q to quit"
	writeCenteredColored(cw, centerX, centerY+7, draw.ColorDarkGray, controls)
}

// drawLevelSelectScreen draws the level grid with lock state and best scores.
func drawLevelSelectScreen(state *State, cw *draw.ChunkWriter, centerX, centerY int) {
	writeCenteredColored(cw, centerX, centerY-9, draw.ColorYellow, "SELECT LEVEL")

	const cellWidth = 20
	gridWidth := levelGridCols * cellWidth
	left := centerX - gridWidth/2

	for _, cfg := range level.All() {
		idx := cfg.Number - 1
		col := left + (idx%levelGridCols)*cellWidth
		row := centerY - 6 + (idx/levelGridCols)*4

		unlocked := state.LevelUnlocked(cfg.Number)
		selected := idx == state.LevelIdx

		label := fmt.Sprintf("%2d %s", cfg.Number, cfg.Name)
		detail := "locked"
		if unlocked {
			if best := state.BestAccuracy(cfg.Number); best > 0 {
				detail = fmt.Sprintf("best %.0f%%", best)
			} else {
				detail = "not played"
			}
		}

		color := draw.ColorWhite
		if !unlocked {
			color = draw.ColorDarkGray
		}
		if selected {
			color = draw.ColorGreen
			cw.WriteColoredAt(col-2, row, color, ">")
		}
		cw.WriteColoredAt(col, row, color, label)
		cw.WriteColoredAt(col, row+1, draw.ColorGray, detail)
	}

	if cfg, ok := level.ByNumber(state.LevelIdx + 1); ok {
		writeCenteredColored(cw, centerX, centerY+5, draw.ColorGray, cfg.Description)
		if !state.LevelUnlocked(cfg.Number) {
			hint := fmt.Sprintf("Reach %.0f%% accuracy on level %d to unlock", level.UnlockAccuracy, cfg.Number-1)
			writeCenteredColored(cw, centerX, centerY+6, draw.ColorOrange, hint)
		}
	}

	controls := "Arrows to choose, 1-9/0 to jump, ENTER to play, ESC for menu"
	writeCenteredColored(cw, centerX, centerY+8, draw.ColorDarkGray, controls)
}

// drawPlayingHUD draws the in-game HUD around the play field.
func drawPlayingHUD(state *State, cw *draw.ChunkWriter, termWidth, termHeight int) {
	if state.Session == nil {
		return
	}

	cw.WriteColoredAt(2, 1, draw.ColorYellow, fmt.Sprintf("L%d %s", state.Level.Number, state.Level.Name))

	scoreText := fmt.Sprintf("Score: %d", state.Session.Score)
	cw.WriteAt(termWidth/2-len(scoreText)/2, 1, scoreText)

	livesText := fmt.Sprintf("Lives: %d", state.Session.Lives)
	cw.WriteColoredAt(termWidth-len(livesText)-1, 1, draw.ColorRed, livesText)

	progressText := fmt.Sprintf("Caught: %d/%d", state.Session.CorrectCatches, state.Level.RequiredCatches)
	cw.WriteAt(2, 2, progressText)

	accText := fmt.Sprintf("Accuracy: %.0f%%", state.Session.Accuracy())
	cw.WriteAt(termWidth-len(accText)-1, 2, accText)

	target := fmt.Sprintf("Target: %s", state.Level.TargetKind)
	cw.WriteColoredAt(2, termHeight, draw.ColorGreen, target)

	if state.Level.TimeLimit > 0 {
		remaining := state.Level.TimeLimit - state.Session.Elapsed(state.Now)
		if remaining < 0 {
			remaining = 0
		}
		timeText := fmt.Sprintf("Time: %.0fs", remaining.Seconds())
		color := draw.ColorWhite
		if remaining < 10*time.Second {
			color = draw.ColorRed
		}
		cw.WriteColoredAt(termWidth-len(timeText)-1, termHeight, color, timeText)
	}
}

// drawPausedOverlay draws the pause banner over the frozen play field.
func drawPausedOverlay(cw *draw.ChunkWriter, centerX, centerY int) {
	writeCenteredColored(cw, centerX, centerY-1, draw.ColorYellow, "P A U S E D")
	writeCentered(cw, centerX, centerY+1, "ESC/ENTER to resume, Q to quit to menu")
}

// drawResultScreen draws the session summary after win or loss.
func drawResultScreen(state *State, cw *draw.ChunkWriter, centerX, centerY int) {
	if state.Session == nil {
		return
	}

	var title string
	var color draw.Color
	switch state.Result {
	case OutcomeWon:
		title, color = "LEVEL COMPLETE", draw.ColorGreen
	case OutcomeTimeUp:
		title, color = "TIME'S UP", draw.ColorOrange
	default:
		title, color = "OUT OF LIVES", draw.ColorRed
	}
	writeCenteredColored(cw, centerX, centerY-5, color, title)

	writeCentered(cw, centerX, centerY-3, fmt.Sprintf("Level %d: %s", state.Level.Number, state.Level.Name))
	writeCentered(cw, centerX, centerY-1, fmt.Sprintf("Score: %d", state.Session.Score))
	writeCentered(cw, centerX, centerY, fmt.Sprintf("Accuracy: %.1f%%  (%d caught, %d missed)",
		state.Session.Accuracy(), state.Session.CorrectCatches, state.Session.IncorrectCatches))

	if avg := state.Session.AverageReaction(); avg > 0 {
		writeCentered(cw, centerX, centerY+1, fmt.Sprintf("Avg reaction: %dms", avg.Milliseconds()))
	}

	if state.Result == OutcomeWon && level.Completed(state.Session.Accuracy()) {
		if next, ok := level.ByNumber(state.Level.Number + 1); ok {
			unlock := fmt.Sprintf("Level %d unlocked: %s", next.Number, next.Name)
			writeCenteredColored(cw, centerX, centerY+3, draw.ColorGreen, unlock)
		}
	}

	writeCenteredColored(cw, centerX, centerY+5, draw.ColorDarkGray, "ENTER to replay, ESC for level select")
}

// drawProgressScreen draws the overall progress report.
func drawProgressScreen(state *State, cw *draw.ChunkWriter, centerX, centerY int) {
	writeCenteredColored(cw, centerX, centerY-9, draw.ColorYellow, "PROGRESS REPORT")

	totalSessions := len(state.history)
	completed := 0
	var accSum float64
	for _, s := range state.history {
		accSum += s.Accuracy()
	}
	for _, cfg := range level.All() {
		if level.Completed(state.BestAccuracy(cfg.Number)) {
			completed++
		}
	}

	avgAcc := 0.0
	if totalSessions > 0 {
		avgAcc = accSum / float64(totalSessions)
	}

	summary := fmt.Sprintf("Sessions: %d   Avg accuracy: %.1f%%   Levels completed: %d/%d",
		totalSessions, avgAcc, completed, level.Count())
	writeCentered(cw, centerX, centerY-7, summary)

	for _, cfg := range level.All() {
		row := centerY - 5 + (cfg.Number - 1)
		stats, played := state.LevelStats[cfg.Number]

		line := fmt.Sprintf("%2d %-16s", cfg.Number, cfg.Name)
		color := draw.ColorDarkGray
		if played && stats.TimesPlayed > 0 {
			line += fmt.Sprintf(" best %5.1f%%  played %dx", stats.BestAccuracy, stats.TimesPlayed)
			if stats.BestReaction > 0 {
				line += fmt.Sprintf("  fastest %dms", stats.BestReaction.Milliseconds())
			}
			color = draw.ColorWhite
			if level.Completed(stats.BestAccuracy) {
				color = draw.ColorGreen
			}
		} else {
			line += " not played"
		}
		cw.WriteColoredAt(centerX-30, row, color, line)
	}

	writeCenteredColored(cw, centerX, centerY+8, draw.ColorDarkGray, "ESC for menu")
}

// drawInactivityWarning shows the disconnect countdown for idle sessions.
func drawInactivityWarning(cw *draw.ChunkWriter, centerX, termHeight int, lastInput time.Time) {
	left := InactivityDisconnectSeconds - time.Since(lastInput).Seconds()
	if left < 0 {
		left = 0
	}
	msg := fmt.Sprintf("Idle. Disconnecting in %.0fs, press any key to stay", left)
	writeCenteredColored(cw, centerX, termHeight-1, draw.ColorOrange, msg)
}
