// ABOUTME: Defines the Terminal interface for raw mode, size queries, input, and output.
// ABOUTME: State is the opaque attribute snapshot captured on raw-mode entry.

package terminal

import "errors"

var (
	// ErrTimeout is returned by ReadByte when no byte arrived within the
	// read window. It is not a failure; callers poll again.
	ErrTimeout error = timeoutError{}

	// ErrStateConsumed is returned when a State is restored a second time.
	ErrStateConsumed = errors.New("terminal state already restored")

	// ErrNoState is returned when Restore is called without a snapshot.
	ErrNoState = errors.New("no terminal state to restore")
)

type timeoutError struct{}

func (timeoutError) Error() string { return "terminal read timeout" }
func (timeoutError) Timeout() bool { return true }

// Terminal abstracts low-level terminal operations: raw mode with a
// restorable snapshot, size queries, timed byte input, and output.
type Terminal interface {
	// EnterRawMode captures the current attributes and switches to raw
	// input with a short read timeout.
	EnterRawMode() (*State, error)
	// Restore reapplies a snapshot returned by EnterRawMode. Each State
	// can be restored once.
	Restore(s *State) error
	Size() (width, height int, err error)
	// ReadByte returns ErrTimeout when the read window expires with no
	// data and io.EOF when the input stream is closed.
	ReadByte() (byte, error)
	Write(p []byte) (n int, err error)
}

// State is a snapshot of terminal attributes taken before raw mode.
type State struct {
	attrs    any
	consumed bool
}

// consume marks s as used, failing if it was already restored.
func (s *State) consume() error {
	if s == nil {
		return ErrNoState
	}
	if s.consumed {
		return ErrStateConsumed
	}
	s.consumed = true
	return nil
}

// Consumed reports whether the snapshot has been restored.
func (s *State) Consumed() bool {
	return s != nil && s.consumed
}
