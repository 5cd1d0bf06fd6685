package loop

import (
	"log"
	"math"
	"time"

	"github.com/tomz197/focuscatcher/internal/draw"
	"github.com/tomz197/focuscatcher/internal/input"
	"github.com/tomz197/focuscatcher/internal/level"
	"github.com/tomz197/focuscatcher/internal/object"
	"github.com/tomz197/focuscatcher/internal/session"
)

// startLevel resets the world and begins a fresh session of cfg.
func startLevel(s *State, cfg level.Config) {
	s.Level = cfg
	s.Objects = s.Objects[:0]
	s.toSpawn = s.toSpawn[:0]
	s.Result = OutcomeNone
	s.backgroundOffset = 0

	s.Cursor = object.NewCursor(float64(s.Screen.CenterX), float64(s.Screen.CenterY))
	s.AddObject(s.Cursor)
	s.AddObject(object.NewShapeSpawner(cfg.SpawnConfig(), s.Screen))

	s.Session = session.New(cfg.Number, cfg.MaxMisses, time.Now())
	s.catchCooldown = CatchCooldownSeconds

	input.ResetKeyInput(s.InputStream)
	s.Phase = PhasePlaying
}

// updatePlaying advances one frame of active gameplay.
func updatePlaying(s *State, canvas *draw.Canvas) error {
	// Escape pauses. The session clock keeps running, so pause time
	// counts against timed levels.
	if s.Input.Escape && s.navCooldown <= 0 {
		s.navCooldown = NavCooldownSeconds
		s.Phase = PhasePaused
		return nil
	}

	s.backgroundOffset += s.Level.BackgroundSpeed * s.Delta.Seconds()

	if err := updateObjects(s); err != nil {
		return err
	}

	resolveCatches(s, canvas)

	// Win and lose conditions
	switch {
	case s.Session.CorrectCatches >= s.Level.RequiredCatches:
		finishSession(s, OutcomeWon)
	case s.Session.Lives <= 0:
		finishSession(s, OutcomeLost)
	case s.Level.TimeLimit > 0 && s.Session.Elapsed(s.Now) > s.Level.TimeLimit:
		finishSession(s, OutcomeTimeUp)
	}

	return nil
}

// updateObjects runs Update on every object, compacting out removed ones,
// then flushes newly spawned objects into the world.
func updateObjects(s *State) error {
	ctx := s.UpdateContext()

	kept := s.Objects[:0]
	for _, obj := range s.Objects {
		remove, err := obj.Update(ctx)
		if err != nil {
			return err
		}
		if remove {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	s.Objects = kept

	s.FlushSpawned()
	return nil
}

// resolveCatches applies this frame's catch attempts: Space at the cursor
// position, plus any mouse clicks mapped into logical coordinates.
func resolveCatches(s *State, canvas *draw.Canvas) {
	if s.Input.Space && s.catchCooldown <= 0 {
		s.catchCooldown = CatchCooldownSeconds
		x, y := s.Cursor.GetPosition()
		catchAt(s, x, y)
	}

	for _, click := range s.Input.Clicks {
		x, y := canvas.TerminalToLogical(click.Col, click.Row)
		if x < 0 || y < 0 || x > float64(s.Screen.Width) || y > float64(s.Screen.Height) {
			continue
		}
		s.Cursor.MoveTo(x, y)
		catchAt(s, x, y)
	}
}

// catchAt attempts a catch at logical coordinates (x, y). The topmost
// shape under the point wins; overlap below it is ignored. A catch on
// empty space counts as a miss.
func catchAt(s *State, x, y float64) {
	// Objects render in slice order, so iterate back to front.
	for i := len(s.Objects) - 1; i >= 0; i-- {
		shape, ok := s.Objects[i].(*object.Shape)
		if !ok || shape.IsCaught() {
			continue
		}
		if !shape.Contains(x, y) {
			continue
		}

		shape.MarkCaught()
		if shape.IsTarget {
			s.Session.RecordCatch(shape.Age(s.Now))
			s.Spawn(object.NewScorePopup(shape.X, shape.Y, session.CatchPoints, draw.ColorGreen))
		} else {
			s.Session.RecordMiss(shape.Age(s.Now))
			s.Spawn(object.NewScorePopup(shape.X, shape.Y, -session.MissPenalty, draw.ColorRed))
		}
		return
	}

	s.Session.RecordMiss(s.Session.Elapsed(s.Now))
	s.Spawn(object.NewScorePopup(x, y, -session.MissPenalty, draw.ColorRed))
}

// finishSession closes the session, persists and uploads it, and moves
// to the result screen. Storage and upload failures never stop the game.
func finishSession(s *State, outcome Outcome) {
	s.Result = outcome
	s.Session.Finish(s.Now)

	if s.Store != nil {
		if err := s.Store.RecordSession(s.Session); err != nil {
			log.Printf("record session: %v", err)
		}
	}
	s.Reporter.Report(s.Session)

	s.reloadStats()
	s.navCooldown = NavCooldownSeconds
	s.Phase = PhaseResult
}

// abandonSession discards the current play-through without recording it.
func abandonSession(s *State) {
	s.Objects = s.Objects[:0]
	s.toSpawn = s.toSpawn[:0]
	s.Session = nil
	s.Cursor = nil
}

// drawBackdrop renders the scrolling dot pattern behind the play field.
func drawBackdrop(s *State, canvas *draw.Canvas) {
	offset := math.Mod(s.backgroundOffset, backdropSpacing)
	for y := -offset; y < float64(s.Screen.Height)+backdropSpacing; y += backdropSpacing {
		// Stagger alternating rows for a woven look.
		rowShift := 0.0
		if int(math.Floor((y+offset)/backdropSpacing))%2 == 1 {
			rowShift = backdropSpacing / 2
		}
		for x := rowShift; x < float64(s.Screen.Width); x += backdropSpacing {
			canvas.SetFloat(x, y, draw.ColorBackdrop)
		}
	}
}
