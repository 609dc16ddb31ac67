// ABOUTME: WithRawMode scopes a raw-mode session with guaranteed restoration.
// ABOUTME: The snapshot is restored exactly once on return, error, or panic.

package terminal

import (
	"errors"
	"fmt"
)

// WithRawMode enters raw mode on t, runs fn, and restores the captured
// snapshot before returning. Restoration is attempted even when fn fails or
// panics; a panic is re-raised after the terminal is back to normal.
// If entering raw mode fails, fn is not called and nothing is restored.
func WithRawMode(t Terminal, fn func() error) (err error) {
	state, err := t.EnterRawMode()
	if err != nil {
		return err
	}

	defer func() {
		r := recover()
		if rerr := t.Restore(state); rerr != nil {
			err = errors.Join(err, fmt.Errorf("restoring terminal: %w", rerr))
		}
		if r != nil {
			panic(r)
		}
	}()

	return fn()
}
