// ABOUTME: Stub raw-mode handling for platforms without termios.
// ABOUTME: EnterRawMode fails, which the editor treats as a fatal setup error.

//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import (
	"errors"
	"io"
	"os"
)

var errUnsupported = errors.New("raw mode is not supported on this platform")

func makeRaw(int) (any, error) {
	return nil, errUnsupported
}

func restore(int, any) error {
	return errUnsupported
}

func readByte(f *os.File, _ bool) (byte, error) {
	var buf [1]byte
	n, err := f.Read(buf[:])
	if n == 1 {
		return buf[0], nil
	}
	if err == nil {
		err = io.EOF
	}
	return 0, err
}
