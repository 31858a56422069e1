// Package draw renders the game to a terminal: a half-block pixel canvas for
// world geometry plus ANSI helpers for the HUD overlay.
package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Block characters used by the canvas and HUD.
const (
	BlockFull      = '█'
	BlockLight     = '░'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ClearScreen clears the terminal and moves the cursor to the top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// maxChunkSize is the maximum bytes to write at once. 1400 stays under a
// typical MTU so frames flow smoothly over SSH.
const maxChunkSize = 1400

// FrameWriter accumulates one frame of terminal output and flushes it in
// MTU-sized chunks. Implements io.Writer so Canvas.Render can target it.
type FrameWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer
	numBuf [20]byte // scratch for allocation-free integer formatting
}

// NewFrameWriter creates a FrameWriter that writes to w.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{
		bufw: bufio.NewWriterSize(w, 8192),
	}
}

// Write implements io.Writer.
func (fw *FrameWriter) Write(p []byte) (n int, err error) {
	return fw.buf.Write(p)
}

// WriteString appends a string to the frame.
func (fw *FrameWriter) WriteString(s string) {
	fw.buf.WriteString(s)
}

// MoveCursor appends an ANSI cursor position sequence (1-based coordinates).
func (fw *FrameWriter) MoveCursor(col, row int) {
	fw.buf.WriteString("\033[")
	fw.buf.Write(strconv.AppendInt(fw.numBuf[:0], int64(row), 10))
	fw.buf.WriteByte(';')
	fw.buf.Write(strconv.AppendInt(fw.numBuf[:0], int64(col), 10))
	fw.buf.WriteByte('H')
}

// WriteAt writes a string at a specific position.
func (fw *FrameWriter) WriteAt(col, row int, s string) {
	fw.MoveCursor(col, row)
	fw.buf.WriteString(s)
}

// SetForeground switches the foreground color for subsequent output.
func (fw *FrameWriter) SetForeground(c Color) {
	fw.buf.WriteString(c.Foreground())
}

// ResetStyle clears all SGR attributes.
func (fw *FrameWriter) ResetStyle() {
	fw.buf.WriteString("\033[0m")
}

// Flush writes the accumulated frame to the underlying writer in chunks,
// then resets the buffer.
func (fw *FrameWriter) Flush() error {
	data := fw.buf.String()
	fw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := fw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return fw.bufw.Flush()
}

var _ io.Writer = (*FrameWriter)(nil)
