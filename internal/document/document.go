// ABOUTME: Read-only document buffer loaded once from a file path
// ABOUTME: Decodes through a BOM-aware transformer so UTF-16 files render as UTF-8

package document

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineBytes bounds a single line; longer lines fail the load instead of
// being silently split.
const maxLineBytes = 16 << 20

// Buffer is an ordered, immutable sequence of text lines.
type Buffer struct {
	lines []string
}

// Empty returns a buffer with no lines.
func Empty() *Buffer {
	return &Buffer{}
}

// FromLines returns a buffer holding a copy of lines.
func FromLines(lines []string) *Buffer {
	return &Buffer{lines: append([]string(nil), lines...)}
}

// Len returns the number of lines.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.lines)
}

// Line returns line i and whether it exists.
func (b *Buffer) Line(i int) (string, bool) {
	if b == nil || i < 0 || i >= len(b.lines) {
		return "", false
	}
	return b.lines[i], true
}

// Open loads the file at path. An empty path yields an empty buffer. A file
// that is missing or cannot be read returns an empty buffer together with
// the error, so callers may warn and carry on.
func Open(path string) (*Buffer, error) {
	if path == "" {
		return Empty(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Empty(), fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	buf, err := Read(f)
	if err != nil {
		return Empty(), fmt.Errorf("reading %s: %w", path, err)
	}
	return buf, nil
}

// Read splits r into lines. A UTF-8 byte order mark is dropped, UTF-16
// input with a byte order mark is converted to UTF-8, and a trailing
// carriage return is removed from each line.
func Read(r io.Reader) (*Buffer, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	sc := bufio.NewScanner(decoded)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &Buffer{lines: lines}, nil
}
