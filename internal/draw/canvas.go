package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Canvas is a monochrome drawing buffer with 2x vertical resolution using
// half-block characters. One terminal cell holds two vertically stacked
// pixels, which makes pixels roughly square on common fonts, so world
// geometry can be drawn with a single uniform scale.
type Canvas struct {
	termWidth  int    // terminal columns
	termHeight int    // terminal rows
	pixels     []bool // flat slice: [y*termWidth + x], y in sub-pixel rows

	renderBuf strings.Builder // reused between frames to avoid allocations
}

// NewCanvas creates a canvas for the given terminal dimensions.
// The pixel grid is termWidth x termHeight*2.
func NewCanvas(termWidth, termHeight int) *Canvas {
	c := &Canvas{}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize adjusts the canvas to new terminal dimensions, reallocating only
// when the size actually changed.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth == c.termWidth && termHeight == c.termHeight {
		return
	}
	c.termWidth = termWidth
	c.termHeight = termHeight
	c.pixels = make([]bool, termWidth*termHeight*2)
}

// Width returns the canvas width in pixels (terminal columns).
func (c *Canvas) Width() int { return c.termWidth }

// Height returns the canvas height in pixels (terminal rows * 2).
func (c *Canvas) Height() int { return c.termHeight * 2 }

// TerminalWidth returns the underlying terminal width in columns.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the underlying terminal height in rows.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Set sets a single pixel. Out-of-bounds coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.termHeight*2 {
		c.pixels[y*c.termWidth+x] = true
	}
}

// FillRect fills the axis-aligned rectangle spanning [x, x+w) x [y, y+h) in
// pixel coordinates. Rectangles partially or fully off-canvas are clipped.
func (c *Canvas) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}

	x0 := int(math.Round(x))
	y0 := int(math.Round(y))
	x1 := int(math.Round(x+w)) - 1
	y1 := int(math.Round(y+h)) - 1

	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, c.termWidth-1)
	y1 = min(y1, c.termHeight*2-1)

	for py := y0; py <= y1; py++ {
		row := py * c.termWidth
		for px := x0; px <= x1; px++ {
			c.pixels[row+px] = true
		}
	}
}

// Render writes the canvas to w using half-block characters, skipping empty
// cells. Cursor positions are 1-based terminal coordinates.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight / 4 * 12)

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue
			}

			c.renderBuf.WriteString("\033[")
			c.renderBuf.WriteString(strconv.Itoa(row + 1))
			c.renderBuf.WriteByte(';')
			c.renderBuf.WriteString(strconv.Itoa(col + 1))
			c.renderBuf.WriteByte('H')
			c.renderBuf.WriteRune(ch)
		}
	}

	io.WriteString(w, c.renderBuf.String())
}
