// ABOUTME: RestoreOnPanic reports a panic that escaped the raw-mode session and exits.
// ABOUTME: Intended for use as a deferred call in the main goroutine.

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// showCursor makes the cursor visible again in case a frame hid it.
const showCursor = "\x1b[?25h"

// RestoreOnPanic should be deferred at the top of main. WithRawMode has
// already restored the terminal attributes by the time a panic reaches main;
// this shows the cursor, prints the panic value and stack trace to stderr,
// then exits with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}
	report(t, r, os.Stderr)
	os.Exit(1)
}

func report(t Terminal, r any, w io.Writer) {
	_, _ = t.Write([]byte(showCursor))
	fmt.Fprintf(w, "\npanic: %v\n\n%s\n", r, debug.Stack())
}
