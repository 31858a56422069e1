// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals report presses (with autorepeat) but never releases, so a short
// hold window is the closest approximation of "key is down".
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit   bool
	Left   bool
	Right  bool
	Jump   bool
	Reset  bool
	Enter  bool
	Escape bool
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit   time.Time
	left   time.Time
	right  time.Time
	jump   time.Time
	reset  time.Time
	enter  time.Time
	escape time.Time
}

// Stream delivers input bytes via a channel and tracks key state so held
// keys survive across frames.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
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

// Read drains all available bytes from the stream (non-blocking), handles
// escape sequences for arrow keys, and reports which keys are currently held.
func (s *Stream) Read() Input {
	now := time.Now()
	var buf []byte

	// Drain all available bytes
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				// Stream closed (EOF): report quit so the loop can exit.
				return Input{Quit: true}
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code> (arrow keys)
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.jump = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			}
		}

		s.applyByte(b, now)
	}

	// A key counts as held if seen within the hold window.
	return Input{
		Quit:   now.Sub(s.state.quit) < keyHoldDuration,
		Left:   now.Sub(s.state.left) < keyHoldDuration,
		Right:  now.Sub(s.state.right) < keyHoldDuration,
		Jump:   now.Sub(s.state.jump) < keyHoldDuration,
		Reset:  now.Sub(s.state.reset) < keyHoldDuration,
		Enter:  now.Sub(s.state.enter) < keyHoldDuration,
		Escape: now.Sub(s.state.escape) < keyHoldDuration,
	}
}

// Clear forgets all held keys, e.g. when switching screens so a held jump
// does not leak into the next game.
func (s *Stream) Clear() {
	s.state = keyState{}
}

// applyByte updates the key state timestamps for a single pressed byte.
func (s *Stream) applyByte(b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		s.state.quit = now
	case 'a', 'A', 'j', 'J':
		s.state.left = now
	case 'd', 'D', 'l', 'L':
		s.state.right = now
	case 'w', 'W', 'i', 'I', ' ':
		s.state.jump = now
	case 'r', 'R':
		s.state.reset = now
	case '\n', '\r':
		s.state.enter = now
	case '\x1b':
		s.state.escape = now
	}
}
