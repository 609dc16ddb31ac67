// ABOUTME: Tests for frame composition: tilde filler, truncation, status bar and cursor placement
// ABOUTME: Frames are compared against sequences built from the screen package constants

package editor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mauromedda/tedit/internal/document"
	"github.com/mauromedda/tedit/pkg/tui/screen"
)

func expectedFrame(rows []string, status string, cursorSeq string) string {
	var b strings.Builder
	b.WriteString(screen.ClearScreen + screen.CursorHome)
	for _, r := range rows {
		b.WriteString(r)
		b.WriteString(screen.EraseLine + screen.CRLF)
	}
	b.WriteString(screen.Reverse + status + screen.ResetAttrs)
	b.WriteString(cursorSeq)
	return b.String()
}

func TestRenderer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	vp := Viewport{Rows: 24, Columns: 80}
	r := NewRenderer(vp, "Text Editor v0.1")
	got := string(r.Frame(document.Empty(), NewCursor(vp)))

	rows := make([]string, 23)
	for i := range rows {
		rows[i] = EmptyLineMarker
	}
	status := "Text Editor v0.1" + strings.Repeat(" ", 80-len("Text Editor v0.1"))
	want := expectedFrame(rows, status, "\x1b[1;1H")

	if got != want {
		t.Errorf("Frame() =\n%q\nwant\n%q", got, want)
	}
	if n := strings.Count(got, EmptyLineMarker+screen.EraseLine); n != 23 {
		t.Errorf("tilde rows = %d, want 23", n)
	}
}

func TestRenderer_DocumentLines(t *testing.T) {
	t.Parallel()

	vp := Viewport{Rows: 6, Columns: 10}
	doc := document.FromLines([]string{"alpha", "", "gamma"})
	c := NewCursor(vp)
	c.X, c.Y = 3, 2

	got := string(NewRenderer(vp, "T").Frame(doc, c))
	want := expectedFrame(
		[]string{"alpha", "", "gamma", EmptyLineMarker, EmptyLineMarker},
		"T"+strings.Repeat(" ", 9),
		"\x1b[3;4H",
	)
	if got != want {
		t.Errorf("Frame() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderer_Truncation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		cols int
		want string
	}{
		{name: "ascii", line: "abcdefghij", cols: 4, want: "abcd"},
		{name: "fits", line: "abc", cols: 4, want: "abc"},
		{name: "wide runes", line: "日本語", cols: 5, want: "日本"},
		{name: "tab indented", line: "\tabcdefghij", cols: 10, want: "        ab"},
		{name: "tab mid line", line: "ab\tcd", cols: 20, want: "ab      cd"},
		{name: "escape bytes shown", line: "\x1b[2Jhi", cols: 10, want: "^[[2Jhi"},
		{name: "combining", line: "e\u0301e\u0301e\u0301", cols: 2, want: "e\u0301e\u0301"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vp := Viewport{Rows: 2, Columns: tt.cols}
			doc := document.FromLines([]string{tt.line})
			got := string(NewRenderer(vp, "").Frame(doc, NewCursor(vp)))
			prefix := screen.ClearScreen + screen.CursorHome + tt.want + screen.EraseLine
			if !strings.HasPrefix(got, prefix) {
				t.Errorf("Frame() = %q, want prefix %q", got, prefix)
			}
		})
	}
}

func TestRenderer_ContentCannotInjectControls(t *testing.T) {
	t.Parallel()

	vp := Viewport{Rows: 4, Columns: 20}
	doc := document.FromLines([]string{"\x1b[2Jhi", "\x1b[7mbold\x1b[0m", "\x07\x1b]0;title\x07"})
	got := string(NewRenderer(vp, "T").Frame(doc, NewCursor(vp)))

	if n := strings.Count(got, screen.ClearScreen); n != 1 {
		t.Errorf("frame contains %d clear-screen sequences, want 1", n)
	}
	if n := strings.Count(got, screen.Reverse); n != 1 {
		t.Errorf("frame contains %d reverse-video sequences, want 1", n)
	}
	if strings.ContainsRune(got, 0x07) {
		t.Error("frame contains a raw BEL byte")
	}
}

func TestRenderer_LongTitleNotPadded(t *testing.T) {
	t.Parallel()

	vp := Viewport{Rows: 2, Columns: 5}
	got := string(NewRenderer(vp, "a very long title").Frame(document.Empty(), NewCursor(vp)))
	want := screen.Reverse + "a very long title" + screen.ResetAttrs
	if !strings.Contains(got, want) {
		t.Errorf("Frame() = %q, want status %q", got, want)
	}
}

func TestRenderer_StatusOnlyViewport(t *testing.T) {
	t.Parallel()

	vp := Viewport{Rows: 1, Columns: 3}
	got := string(NewRenderer(vp, "x").Frame(document.FromLines([]string{"hidden"}), NewCursor(vp)))
	want := expectedFrame(nil, "x  ", "\x1b[1;1H")
	if got != want {
		t.Errorf("Frame() = %q, want %q", got, want)
	}
}

type countingWriter struct {
	bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

func TestRenderer_DrawSingleWrite(t *testing.T) {
	t.Parallel()

	vp := Viewport{Rows: 24, Columns: 80}
	r := NewRenderer(vp, "title")
	doc := document.FromLines([]string{"one", "two"})
	c := NewCursor(vp)

	var w countingWriter
	if err := r.Draw(&w, doc, c); err != nil {
		t.Fatalf("Draw() error: %v", err)
	}
	if w.writes != 1 {
		t.Errorf("Draw() issued %d writes, want 1", w.writes)
	}
	if got, want := w.String(), string(r.Frame(doc, c)); got != want {
		t.Errorf("Draw() output differs from Frame()")
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	var w countingWriter
	if err := Clear(&w); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if got, want := w.String(), screen.ClearScreen+screen.CursorHome; got != want {
		t.Errorf("Clear() wrote %q, want %q", got, want)
	}
	if w.writes != 1 {
		t.Errorf("Clear() issued %d writes, want 1", w.writes)
	}
}
