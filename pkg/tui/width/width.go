// ABOUTME: Display-width measurement and truncation with grapheme-aware segmentation
// ABOUTME: Fast path for printable ASCII; go-runewidth sizes clusters, uniseg splits them

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the number of terminal columns s occupies.
// East Asian wide characters and emoji count as two columns; control
// characters count as zero.
func VisibleWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w += graphemeWidth(cluster)
	}
	return w
}

// Truncate returns the longest prefix of s that fits in maxCols columns,
// never splitting a grapheme cluster. Strings that already fit are
// returned unchanged.
func Truncate(s string, maxCols int) string {
	if maxCols <= 0 {
		return ""
	}
	if isPlainASCII(s) {
		if len(s) <= maxCols {
			return s
		}
		return s[:maxCols]
	}

	cols := 0
	consumed := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w := graphemeWidth(cluster)
		if cols+w > maxCols {
			return s[:consumed]
		}
		cols += w
		consumed += len(cluster)
	}
	return s
}

// PadRight appends spaces to s until it occupies cols columns. Strings at
// or beyond cols are returned unchanged.
func PadRight(s string, cols int) string {
	pad := cols - VisibleWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

// isPlainASCII returns true if s contains only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// graphemeWidth returns the display width of a single grapheme cluster,
// taken from its first rune.
func graphemeWidth(cluster string) int {
	if len(cluster) == 0 {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
