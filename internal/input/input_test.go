package input

import (
	"bufio"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStream() *Stream {
	return &Stream{state: keyState{numberVal: -1}}
}

func parseInput(t *testing.T, bytes string) (*Stream, Input) {
	t.Helper()
	s := newTestStream()
	now := time.Now()
	parseBytes(s, []byte(bytes), now)

	return s, Input{
		Quit:   now.Sub(s.state.quit) < keyHoldDuration,
		Left:   now.Sub(s.state.left) < keyHoldDuration,
		Right:  now.Sub(s.state.right) < keyHoldDuration,
		Up:     now.Sub(s.state.up) < keyHoldDuration,
		Down:   now.Sub(s.state.down) < keyHoldDuration,
		Space:  now.Sub(s.state.space) < keyHoldDuration,
		Enter:  now.Sub(s.state.enter) < keyHoldDuration,
		Escape: now.Sub(s.state.escape) < keyHoldDuration,
	}
}

func TestParseLetterKeys(t *testing.T) {
	_, in := parseInput(t, "w")
	assert.True(t, in.Up)

	_, in = parseInput(t, "a")
	assert.True(t, in.Left)

	_, in = parseInput(t, "s")
	assert.True(t, in.Down)

	_, in = parseInput(t, "d")
	assert.True(t, in.Right)

	_, in = parseInput(t, "q")
	assert.True(t, in.Quit)

	_, in = parseInput(t, " ")
	assert.True(t, in.Space)

	_, in = parseInput(t, "\r")
	assert.True(t, in.Enter)
}

func TestParseArrowKeys(t *testing.T) {
	_, in := parseInput(t, "\x1b[A")
	assert.True(t, in.Up)
	assert.False(t, in.Escape, "CSI sequences must not register as Escape")

	_, in = parseInput(t, "\x1b[B")
	assert.True(t, in.Down)

	_, in = parseInput(t, "\x1b[C")
	assert.True(t, in.Right)

	_, in = parseInput(t, "\x1b[D")
	assert.True(t, in.Left)
}

func TestParseBareEscape(t *testing.T) {
	s := newTestStream()
	now := time.Now()
	parseBytes(s, []byte("\x1b"), now)

	// A lone ESC is held one frame in case it starts a sequence.
	assert.False(t, now.Sub(s.state.escape) < keyHoldDuration)
	assert.Equal(t, []byte("\x1b"), s.pending)

	// Nothing followed, so the next read applies it as a real Escape.
	in := ReadInput(s)
	assert.True(t, in.Escape)
	assert.Empty(t, s.pending)
}

func TestParseBytesCarriesSplitSequence(t *testing.T) {
	s := newTestStream()
	now := time.Now()
	parseBytes(s, []byte("w\x1b["), now)

	assert.True(t, now.Sub(s.state.up) < keyHoldDuration)
	assert.Equal(t, []byte("\x1b["), s.pending, "incomplete CSI prefix must be carried")

	carried := append(s.pending[:0:0], s.pending...)
	s.pending = s.pending[:0]
	parseBytes(s, append(carried, 'B'), now)

	assert.True(t, now.Sub(s.state.down) < keyHoldDuration)
	assert.Empty(t, s.pending)
}

func TestParseNumbers(t *testing.T) {
	s := newTestStream()
	now := time.Now()
	parseBytes(s, []byte("7"), now)

	assert.Equal(t, 7, s.state.numberVal)
	assert.True(t, now.Sub(s.state.number) < keyHoldDuration)
}

func TestParseSGRMousePress(t *testing.T) {
	consumed, click, press := parseSGRMouse([]byte("\x1b[<0;42;13M"))
	require.Equal(t, len("\x1b[<0;42;13M"), consumed)
	assert.True(t, press)
	assert.Equal(t, MouseClick{Col: 42, Row: 13}, click)
}

func TestParseSGRMouseRelease(t *testing.T) {
	consumed, _, press := parseSGRMouse([]byte("\x1b[<0;10;5m"))
	require.Positive(t, consumed)
	assert.False(t, press, "release (lowercase m) is not a click")
}

func TestParseSGRMouseMotionIgnored(t *testing.T) {
	// Button 32 is motion with the left button held.
	consumed, _, press := parseSGRMouse([]byte("\x1b[<32;10;5M"))
	require.Positive(t, consumed)
	assert.False(t, press)
}

func TestParseSGRMouseMalformed(t *testing.T) {
	consumed, _, _ := parseSGRMouse([]byte("\x1b[<0;42M"))
	assert.Zero(t, consumed, "too few parameters")

	consumed, _, _ = parseSGRMouse([]byte("\x1b[<0;42;13"))
	assert.Zero(t, consumed, "incomplete sequence")
}

func TestParseClickWithinKeyBytes(t *testing.T) {
	s := newTestStream()
	parseBytes(s, []byte("w\x1b[<0;8;4Md"), time.Now())

	require.Len(t, s.clicks, 1)
	assert.Equal(t, MouseClick{Col: 8, Row: 4}, s.clicks[0])
}

func TestReadInputDrainsStream(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("w \x1b[<0;3;2M")))

	// Wait for the reader goroutine to push everything onto the channel.
	deadline := time.Now().Add(time.Second)
	var in Input
	for time.Now().Before(deadline) {
		in = ReadInput(s)
		if in.Up && in.Space && len(in.Clicks) == 1 {
			break
		}
		time.Sleep(time.Millisecond)
	}

	assert.True(t, in.Up)
	assert.True(t, in.Space)
	require.Len(t, in.Clicks, 1)
	assert.Equal(t, MouseClick{Col: 3, Row: 2}, in.Clicks[0])
}

func TestReadInputReassemblesSplitMouseReport(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	s := StartStream(bufio.NewReader(pr))

	_, err := pw.Write([]byte("\x1b[<0;4"))
	require.NoError(t, err)

	// Read frames until the fragment has been carried over. It must not
	// surface as an Escape press, a digit, or a click.
	deadline := time.Now().Add(time.Second)
	var in Input
	for time.Now().Before(deadline) {
		in = ReadInput(s)
		if len(s.pending) > 0 {
			break
		}
		time.Sleep(time.Millisecond)
	}
	assert.False(t, in.Escape, "split mouse report must not pause the game")
	assert.Equal(t, -1, in.Number, "split mouse report must not leak digits")
	assert.Empty(t, in.Clicks)

	_, err = pw.Write([]byte("0;12M"))
	require.NoError(t, err)

	for time.Now().Before(deadline) {
		in = ReadInput(s)
		if len(in.Clicks) == 1 {
			break
		}
		time.Sleep(time.Millisecond)
	}
	require.Len(t, in.Clicks, 1)
	assert.Equal(t, MouseClick{Col: 40, Row: 12}, in.Clicks[0])
	assert.False(t, in.Escape)
	assert.Equal(t, -1, in.Number)
}

func TestResetKeyInput(t *testing.T) {
	s := newTestStream()
	parseBytes(s, []byte(" \x1b[<0;3"), time.Now())
	require.True(t, time.Since(s.state.space) < keyHoldDuration)
	require.NotEmpty(t, s.pending)

	ResetKeyInput(s)
	assert.False(t, time.Since(s.state.space) < keyHoldDuration)
	assert.Empty(t, s.pending)
}
