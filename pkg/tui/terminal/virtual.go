// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Scripted input, captured output, raw-mode accounting and injectable failures.

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// VirtualTerminal is a fake Terminal for unit tests.
// It replays fed input, records written output and tracks raw-mode transitions.
type VirtualTerminal struct {
	mu           sync.Mutex
	out          bytes.Buffer
	in           []byte
	inputClosed  bool
	width        int
	height       int
	rawMode      bool
	enterCount   int
	restoreCount int
	issued       *State
	lastRestored *State
	enterErr     error
	sizeErr      error
	readErr      error
}

type virtualAttrs struct {
	generation int
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:  width,
		height: height,
	}
}

// EnterRawMode records a raw-mode entry and issues a fresh snapshot.
func (v *VirtualTerminal) EnterRawMode() (*State, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.enterErr != nil {
		return nil, v.enterErr
	}
	v.rawMode = true
	v.enterCount++
	v.issued = &State{attrs: virtualAttrs{generation: v.enterCount}}
	return v.issued, nil
}

// Restore records a raw-mode exit.
func (v *VirtualTerminal) Restore(s *State) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := s.consume(); err != nil {
		return err
	}
	if _, ok := s.attrs.(virtualAttrs); !ok {
		return fmt.Errorf("restoring virtual terminal: foreign state %T", s.attrs)
	}
	v.rawMode = false
	v.restoreCount++
	v.lastRestored = s
	return nil
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.sizeErr != nil {
		return 0, 0, v.sizeErr
	}
	return v.width, v.height, nil
}

// ReadByte pops the next fed byte. With nothing queued it returns the
// error set by FailRead, io.EOF once CloseInput has been called, or
// ErrTimeout.
func (v *VirtualTerminal) ReadByte() (byte, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.in) == 0 {
		if v.readErr != nil {
			return 0, v.readErr
		}
		if v.inputClosed {
			return 0, io.EOF
		}
		return 0, ErrTimeout
	}
	b := v.in[0]
	v.in = v.in[1:]
	return b, nil
}

// Write appends data to the output buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, err := v.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// --- Test helpers (not part of Terminal interface) ---

// Feed queues input bytes for ReadByte.
func (v *VirtualTerminal) Feed(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.in = append(v.in, s...)
}

// CloseInput makes ReadByte return io.EOF once queued input is drained.
func (v *VirtualTerminal) CloseInput() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.inputClosed = true
}

// FailEnter makes subsequent EnterRawMode calls return err.
func (v *VirtualTerminal) FailEnter(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.enterErr = err
}

// FailRead makes ReadByte return err once queued input is drained.
func (v *VirtualTerminal) FailRead(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.readErr = err
}

// FailSize makes subsequent Size calls return err.
func (v *VirtualTerminal) FailSize(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sizeErr = err
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.out.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.out.Reset()
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode succeeded.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// RestoreCount returns how many times Restore succeeded.
func (v *VirtualTerminal) RestoreCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.restoreCount
}

// Issued returns the most recent snapshot handed out by EnterRawMode.
func (v *VirtualTerminal) Issued() *State {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.issued
}

// LastRestored returns the snapshot passed to the last successful Restore.
func (v *VirtualTerminal) LastRestored() *State {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.lastRestored
}

// SetSize updates the terminal dimensions.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.width = width
	v.height = height
}
