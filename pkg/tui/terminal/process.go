// ABOUTME: ProcessTerminal implements Terminal on real file descriptors.
// ABOUTME: Size and tty detection use golang.org/x/term; raw mode is platform-specific.

package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ReadTimeoutDeciseconds is the raw-mode read window (VTIME), 100ms.
const ReadTimeoutDeciseconds = 1

// ProcessTerminal is a real terminal backed by an input and output file,
// normally os.Stdin and os.Stdout.
type ProcessTerminal struct {
	in  *os.File
	out *os.File
	raw bool
}

// NewProcessTerminal returns a ProcessTerminal reading from in and writing to out.
func NewProcessTerminal(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{in: in, out: out}
}

// IsTerminal reports whether the input is an interactive terminal.
func (t *ProcessTerminal) IsTerminal() bool {
	return term.IsTerminal(int(t.in.Fd()))
}

// EnterRawMode switches the input to raw mode and returns the previous state.
func (t *ProcessTerminal) EnterRawMode() (*State, error) {
	if !t.IsTerminal() {
		return nil, errors.New("entering raw mode: input is not a terminal")
	}
	attrs, err := makeRaw(int(t.in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}
	t.raw = true
	return &State{attrs: attrs}, nil
}

// Restore reapplies the attributes captured by EnterRawMode.
func (t *ProcessTerminal) Restore(s *State) error {
	if err := s.consume(); err != nil {
		return err
	}
	if err := restore(int(t.in.Fd()), s.attrs); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.raw = false
	return nil
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("getting terminal size: terminal reported %dx%d", w, h)
	}
	return w, h, nil
}

// ReadByte reads one byte of input, waiting at most one read window.
func (t *ProcessTerminal) ReadByte() (byte, error) {
	return readByte(t.in, t.raw)
}

// Write sends bytes to the output file.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}
