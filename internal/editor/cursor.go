// ABOUTME: Cursor/viewport model: clamped cursor motions inside fixed terminal bounds
// ABOUTME: Every motion keeps 0 <= X < Columns and 0 <= Y < Rows

package editor

import (
	"errors"
	"fmt"
)

// ErrInvalidViewport is returned for viewports without positive dimensions.
var ErrInvalidViewport = errors.New("invalid viewport")

// Viewport is the visible terminal area, fixed for the session.
type Viewport struct {
	Rows    int
	Columns int
}

// NewViewport validates the terminal's reported size.
func NewViewport(rows, columns int) (Viewport, error) {
	if rows <= 0 || columns <= 0 {
		return Viewport{}, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, columns, rows)
	}
	return Viewport{Rows: rows, Columns: columns}, nil
}

// Motion is a cursor positioning command.
type Motion int

const (
	MoveUp Motion = iota
	MoveDown
	MoveLeft
	MoveRight
	MoveLineStart
	MoveLineEnd
)

// Cursor is a position inside a Viewport, zero-based.
type Cursor struct {
	X, Y int
	vp   Viewport
}

// NewCursor returns a cursor at the top-left corner of vp.
func NewCursor(vp Viewport) *Cursor {
	return &Cursor{vp: vp}
}

// Viewport returns the bounds the cursor is clamped to.
func (c *Cursor) Viewport() Viewport {
	return c.vp
}

// Move applies m, clamping at the viewport edges.
func (c *Cursor) Move(m Motion) {
	switch m {
	case MoveUp:
		if c.Y > 0 {
			c.Y--
		}
	case MoveDown:
		if c.Y < c.vp.Rows-1 {
			c.Y++
		}
	case MoveLeft:
		if c.X > 0 {
			c.X--
		}
	case MoveRight:
		if c.X < c.vp.Columns-1 {
			c.X++
		}
	case MoveLineStart:
		c.X = 0
	case MoveLineEnd:
		c.X = c.vp.Columns - 1
	}
	c.clamp()
}

// clamp pulls a position set from outside back into bounds.
func (c *Cursor) clamp() {
	c.X = max(0, min(c.X, c.vp.Columns-1))
	c.Y = max(0, min(c.Y, c.vp.Rows-1))
}
