// ABOUTME: Renderer composes full-screen frames: document rows, tilde filler, status bar, cursor
// ABOUTME: Each frame is written with a single Write call; no differential redraw

package editor

import (
	"io"

	"github.com/mauromedda/tedit/internal/document"
	"github.com/mauromedda/tedit/pkg/tui/screen"
	"github.com/mauromedda/tedit/pkg/tui/width"
)

// EmptyLineMarker fills rows past the end of the document.
const EmptyLineMarker = "~"

// Renderer draws the document and cursor into a viewport.
type Renderer struct {
	vp    Viewport
	title string
}

// NewRenderer returns a Renderer for vp with the given status bar title.
func NewRenderer(vp Viewport, title string) *Renderer {
	return &Renderer{vp: vp, title: title}
}

// Draw composes one frame and writes it to w in a single call.
func (r *Renderer) Draw(w io.Writer, doc *document.Buffer, c *Cursor) error {
	f := r.compose(doc, c)
	defer f.Release()

	_, err := f.WriteTo(w)
	return err
}

// Frame returns a copy of the frame Draw would write.
func (r *Renderer) Frame(doc *document.Buffer, c *Cursor) []byte {
	f := r.compose(doc, c)
	defer f.Release()

	return append([]byte(nil), f.Bytes()...)
}

func (r *Renderer) compose(doc *document.Buffer, c *Cursor) *screen.Frame {
	f := screen.NewFrame()
	f.Clear()

	// The last row belongs to the status bar.
	for row := 0; row < r.vp.Rows-1; row++ {
		if line, ok := doc.Line(row); ok {
			f.Text(width.Truncate(width.Printable(line), r.vp.Columns))
		} else {
			f.Text(EmptyLineMarker)
		}
		f.EndLine()
	}

	f.Reversed(width.PadRight(r.title, r.vp.Columns))
	f.MoveCursor(c.Y+1, c.X+1)
	return f
}

// Clear writes a clear-screen and cursor-home frame, leaving the terminal
// blank for the shell.
func Clear(w io.Writer) error {
	f := screen.NewFrame()
	defer f.Release()

	_, err := f.Clear().WriteTo(w)
	return err
}
