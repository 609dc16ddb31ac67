// ABOUTME: Frame accumulates one full-screen redraw of text and VT100 control sequences
// ABOUTME: Backed by a pooled buffer and flushed with a single Write to avoid tearing

package screen

import (
	"bytes"
	"io"
	"strconv"

	"github.com/mauromedda/tedit/pkg/tui/internal/pool"
)

// Control sequences emitted by Frame.
const (
	ClearScreen = "\x1b[2J"
	CursorHome  = "\x1b[H"
	EraseLine   = "\x1b[K"
	Reverse     = "\x1b[7m"
	ResetAttrs  = "\x1b[0m"
	CRLF        = "\r\n"
)

// Frame is a write-once output frame. Build it, call WriteTo, then Release.
type Frame struct {
	buf *bytes.Buffer
}

// NewFrame acquires an empty frame.
func NewFrame() *Frame {
	return &Frame{buf: pool.GetBytesBuffer()}
}

// Clear emits clear-screen followed by cursor-home.
func (f *Frame) Clear() *Frame {
	f.buf.WriteString(ClearScreen)
	f.buf.WriteString(CursorHome)
	return f
}

// Text appends s verbatim.
func (f *Frame) Text(s string) *Frame {
	f.buf.WriteString(s)
	return f
}

// EndLine erases to end of line and moves to the start of the next one.
func (f *Frame) EndLine() *Frame {
	f.buf.WriteString(EraseLine)
	f.buf.WriteString(CRLF)
	return f
}

// Reversed appends s in reverse video and resets attributes afterwards.
func (f *Frame) Reversed(s string) *Frame {
	f.buf.WriteString(Reverse)
	f.buf.WriteString(s)
	f.buf.WriteString(ResetAttrs)
	return f
}

// MoveCursor positions the cursor at the 1-indexed row and column.
func (f *Frame) MoveCursor(row, col int) *Frame {
	var num [20]byte
	f.buf.WriteString("\x1b[")
	f.buf.Write(strconv.AppendInt(num[:0], int64(row), 10))
	f.buf.WriteByte(';')
	f.buf.Write(strconv.AppendInt(num[:0], int64(col), 10))
	f.buf.WriteByte('H')
	return f
}

// Bytes returns the composed frame. The slice is only valid until Release.
func (f *Frame) Bytes() []byte {
	return f.buf.Bytes()
}

// WriteTo writes the whole frame to w in a single Write call.
func (f *Frame) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.buf.Bytes())
	return int64(n), err
}

// Release returns the frame's buffer to the pool. The frame must not be
// used afterwards.
func (f *Frame) Release() {
	pool.PutBytesBuffer(f.buf)
	f.buf = nil
}
