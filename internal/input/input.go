// Package input reads raw terminal bytes into per-frame input state,
// including SGR mouse click events.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// MouseClick is a mouse button press at a 1-based terminal cell.
type MouseClick struct {
	Col int
	Row int
}

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Space   bool
	Enter   bool
	Escape  bool
	Number  int // -1 when no digit was pressed
	Clicks  []MouseClick
	Pressed []byte
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit      time.Time
	left      time.Time
	right     time.Time
	up        time.Time
	down      time.Time
	space     time.Time
	enter     time.Time
	escape    time.Time
	number    time.Time
	numberVal int
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	state   keyState
	clicks  []MouseClick // reused between frames
	pending []byte       // tail of an escape sequence split across reads
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:    make(chan byte, 128),
		state: keyState{numberVal: -1},
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and SGR mouse reports, and uses
// key state persistence so briefly held keys register on every frame.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

	// A mouse report is up to 13 bytes and can straddle two reads. Start
	// from the carried tail so the sequence reassembles before parsing.
	carried := len(s.pending)
	if carried > 0 {
		buf = append(buf, s.pending...)
		s.pending = s.pending[:0]
	}

	// Drain all available bytes
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				goto parse // Stream closed
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	s.clicks = s.clicks[:0]
	parseBytes(s, buf, now)

	// A carried prefix with no continuation is real input (a bare Escape
	// press), not a split sequence. Apply it byte by byte.
	if len(buf) == carried && len(s.pending) > 0 {
		for _, b := range s.pending {
			applyByteToState(&s.state, b, now)
		}
		s.pending = s.pending[:0]
	}

	// Build input from key state - keys are "pressed" if seen within hold duration
	input := Input{
		Quit:    now.Sub(s.state.quit) < keyHoldDuration,
		Left:    now.Sub(s.state.left) < keyHoldDuration,
		Right:   now.Sub(s.state.right) < keyHoldDuration,
		Up:      now.Sub(s.state.up) < keyHoldDuration,
		Down:    now.Sub(s.state.down) < keyHoldDuration,
		Space:   now.Sub(s.state.space) < keyHoldDuration,
		Enter:   now.Sub(s.state.enter) < keyHoldDuration,
		Escape:  now.Sub(s.state.escape) < keyHoldDuration,
		Number:  -1,
		Clicks:  s.clicks,
		Pressed: buf,
	}

	if now.Sub(s.state.number) < keyHoldDuration {
		input.Number = s.state.numberVal
	}

	return input
}

// ResetKeyInput clears all key state so a held key does not leak into the
// next game phase (e.g. the space that started a level also catching).
func ResetKeyInput(s *Stream) {
	s.state = keyState{numberVal: -1}
	s.pending = s.pending[:0]
}

// parseBytes walks the collected bytes, consuming escape sequences and
// updating key state timestamps. A trailing incomplete sequence is held
// in s.pending for the next frame's read instead of being misread as a
// bare Escape plus stray digits.
func parseBytes(s *Stream, buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			rest := buf[i:]
			if incompleteEscape(rest) {
				s.pending = append(s.pending[:0], rest...)
				return
			}

			if len(rest) >= 3 && rest[1] == '[' {
				// SGR mouse report: ESC [ < btn ; col ; row (M|m)
				if rest[2] == '<' {
					if consumed, click, press := parseSGRMouse(rest); consumed > 0 {
						if press {
							s.clicks = append(s.clicks, click)
						}
						i += consumed - 1
						continue
					}
				}

				// CSI cursor keys: ESC [ A/B/C/D
				switch rest[2] {
				case 'A':
					s.state.up = now
					i += 2
					continue
				case 'B':
					s.state.down = now
					i += 2
					continue
				case 'C':
					s.state.right = now
					i += 2
					continue
				case 'D':
					s.state.left = now
					i += 2
					continue
				}
			}
		}

		applyByteToState(&s.state, b, now)
	}
}

// incompleteEscape reports whether rest is a prefix of an escape sequence
// that may still complete once more bytes arrive. Only the sequences this
// parser understands are considered.
func incompleteEscape(rest []byte) bool {
	if rest[0] != '\x1b' {
		return false
	}
	if len(rest) == 1 {
		return true
	}
	if rest[1] != '[' {
		return false
	}
	if len(rest) == 2 {
		return true
	}
	if rest[2] != '<' {
		// Cursor keys are complete at 3 bytes.
		return false
	}
	for _, b := range rest[3:] {
		if (b < '0' || b > '9') && b != ';' {
			return false
		}
	}
	return true
}

// parseSGRMouse parses an SGR mouse sequence starting at buf[0] == ESC.
// Returns the number of bytes consumed (0 if the sequence is incomplete or
// malformed), the click position, and whether it was a left-button press.
func parseSGRMouse(buf []byte) (consumed int, click MouseClick, press bool) {
	i := 3 // Skip ESC [ <
	nums := [3]int{}
	numIdx := 0

	for ; i < len(buf); i++ {
		b := buf[i]
		switch {
		case b >= '0' && b <= '9':
			nums[numIdx] = nums[numIdx]*10 + int(b-'0')
		case b == ';':
			numIdx++
			if numIdx > 2 {
				return 0, MouseClick{}, false
			}
		case b == 'M' || b == 'm':
			if numIdx != 2 {
				return 0, MouseClick{}, false
			}
			// Button 0 is left; motion (bit 5) and wheel (bit 6) are ignored.
			press = b == 'M' && nums[0] == 0
			return i + 1, MouseClick{Col: nums[1], Row: nums[2]}, press
		default:
			return 0, MouseClick{}, false
		}
	}
	return 0, MouseClick{}, false
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 's', 'S', 'j', 'J':
		state.down = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		state.number = now
		state.numberVal = int(b - '0')
	}
}
