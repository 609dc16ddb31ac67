// ABOUTME: Tests for Printable: tab stops, caret notation and untouched printable text
// ABOUTME: Output must never contain a raw control byte

package width

import "testing"

func TestPrintable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain ascii", input: "hello", want: "hello"},
		{name: "leading tab", input: "\tabc", want: "        abc"},
		{name: "tab mid stop", input: "ab\tc", want: "ab      c"},
		{name: "tab at stop", input: "abcdefgh\tx", want: "abcdefgh        x"},
		{name: "tab after wide", input: "你\tx", want: "你      x"},
		{name: "escape", input: "\x1b[2Jhi", want: "^[[2Jhi"},
		{name: "bell and del", input: "a\x07b\x7f", want: "a^Gb^?"},
		{name: "carriage return", input: "a\rb", want: "a^Mb"},
		{name: "c1 csi", input: "a\u009b2J", want: "a?2J"},
		{name: "unicode kept", input: "héllo 你好", want: "héllo 你好"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Printable(tt.input)
			if got != tt.want {
				t.Errorf("Printable(%q) = %q, want %q", tt.input, got, tt.want)
			}
			for _, r := range got {
				if r < 0x20 || (r >= 0x7f && r <= 0x9f) {
					t.Errorf("Printable(%q) left control %U in output", tt.input, r)
				}
			}
		})
	}
}

func TestPrintable_WidthMatchesTabStops(t *testing.T) {
	t.Parallel()

	if got := VisibleWidth(Printable("\tabcdefghij")); got != 18 {
		t.Errorf("VisibleWidth(Printable(tab line)) = %d, want 18", got)
	}
	if got := Truncate(Printable("\tabcdefghij"), 10); got != "        ab" {
		t.Errorf("Truncate(Printable(tab line), 10) = %q", got)
	}
}
