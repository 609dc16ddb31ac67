// ABOUTME: Makes raw text safe to print: tabs expand to spaces, control bytes become caret notation
// ABOUTME: The result contains no bytes a terminal would interpret as cursor or mode commands

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

// TabWidth is the distance between tab stops.
const TabWidth = 8

// Printable expands tabs to the next TabWidth stop and rewrites control
// characters so every byte of the result occupies a visible column. C0
// controls and DEL use caret notation ("^[", "^?"); C1 controls become "?".
func Printable(s string) string {
	if isPlainASCII(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	col := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		switch {
		case cluster == "\t":
			n := TabWidth - col%TabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case isControlCluster(cluster):
			for _, r := range cluster {
				col += writeControl(&b, r)
			}
		default:
			b.WriteString(cluster)
			col += graphemeWidth(cluster)
		}
	}
	return b.String()
}

// isControlCluster reports whether cluster starts with a C0, DEL or C1
// control. Controls always form their own cluster (CR LF is the only pair).
func isControlCluster(cluster string) bool {
	r := []rune(cluster)[0]
	return r < 0x20 || (r >= 0x7f && r <= 0x9f)
}

func writeControl(b *strings.Builder, r rune) int {
	switch {
	case r == 0x7f:
		b.WriteString("^?")
		return 2
	case r < 0x20:
		b.WriteByte('^')
		b.WriteByte(byte(r) ^ 0x40)
		return 2
	case r >= 0x80 && r <= 0x9f:
		b.WriteByte('?')
		return 1
	}
	b.WriteRune(r)
	return graphemeWidth(string(r))
}
