// ABOUTME: Unix termios raw-mode handling and timed reads via golang.org/x/sys/unix.
// ABOUTME: Uses VMIN=0/VTIME=1 so reads return after 100ms even without input.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// makeRaw disables canonical mode, echo, signals, extended input processing,
// output post-processing, software flow control and CR-to-NL translation.
// It returns the attributes in effect before the change.
func makeRaw(fd int) (*unix.Termios, error) {
	orig, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("tcgetattr: %w", err)
	}

	raw := *orig
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Iflag &^= unix.IXON | unix.ICRNL
	raw.Oflag &^= unix.OPOST
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = ReadTimeoutDeciseconds

	if err := unix.IoctlSetTermios(fd, ioctlSetTermiosFlush, &raw); err != nil {
		return nil, fmt.Errorf("tcsetattr: %w", err)
	}
	return orig, nil
}

func restore(fd int, attrs any) error {
	orig, ok := attrs.(*unix.Termios)
	if !ok || orig == nil {
		return ErrNoState
	}
	if err := unix.IoctlSetTermios(fd, ioctlSetTermiosFlush, orig); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	return nil
}

// readByte performs one read. In raw mode a zero-length read means the
// VTIME window expired; outside raw mode it means end of input.
func readByte(f *os.File, raw bool) (byte, error) {
	var buf [1]byte
	n, err := unix.Read(int(f.Fd()), buf[:])
	switch {
	case errors.Is(err, unix.EINTR), errors.Is(err, unix.EAGAIN):
		return 0, ErrTimeout
	case errors.Is(err, unix.EIO):
		// The controlling terminal hung up.
		return 0, io.EOF
	case err != nil:
		return 0, fmt.Errorf("reading terminal: %w", err)
	case n == 0 && raw:
		return 0, ErrTimeout
	case n == 0:
		return 0, io.EOF
	}
	return buf[0], nil
}
