// ABOUTME: Streaming escape-sequence decoder turning raw bytes into Keys.
// ABOUTME: Explicit state machine fed one byte at a time; Next pulls from an io.ByteReader.

package key

import (
	"errors"
	"fmt"
	"io"
)

type decodeState int

const (
	stateGround   decodeState = iota
	stateEscape               // saw ESC
	stateCSI                  // saw ESC [
	stateCSIDigit             // saw ESC [ <digit>
)

// Decoder resolves variable-length ANSI key sequences. It holds no buffer
// beyond the sequence currently being decoded. The zero value is ready to use.
type Decoder struct {
	state decodeState
	digit byte
}

// NewDecoder returns a Decoder in the ground state.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Pending reports whether the decoder is in the middle of a sequence.
func (d *Decoder) Pending() bool {
	return d.state != stateGround
}

// Feed advances the state machine by one byte. It returns the decoded key and
// true once a sequence is complete, or false while more bytes are needed.
func (d *Decoder) Feed(b byte) (Key, bool) {
	switch d.state {
	case stateEscape:
		if b != '[' {
			d.reset()
			return passthrough(b), true
		}
		d.state = stateCSI
		return Key{}, false

	case stateCSI:
		if t, ok := csiFinals[b]; ok {
			d.reset()
			return Key{Type: t}, true
		}
		if isDigit(b) {
			d.state = stateCSIDigit
			d.digit = b
			return Key{}, false
		}
		d.reset()
		return passthrough(b), true

	case stateCSIDigit:
		digit := d.digit
		d.reset()
		if b != '~' {
			return passthrough(b), true
		}
		if t, ok := csiTilde[digit]; ok {
			return Key{Type: t}, true
		}
		return passthrough(b), true

	default:
		if b == Escape {
			d.state = stateEscape
			return Key{}, false
		}
		return Char(b), true
	}
}

// Flush abandons a partial sequence. It returns a literal ESC key and true if
// a sequence was pending, so a lone Escape press is not lost.
func (d *Decoder) Flush() (Key, bool) {
	if d.state == stateGround {
		return Key{}, false
	}
	d.reset()
	return Char(Escape), true
}

func (d *Decoder) reset() {
	d.state = stateGround
	d.digit = 0
}

// Next reads bytes from r until exactly one key is decoded.
//
// A read error that reports Timeout() before any byte arrived is returned
// as is, so callers can poll again. The same timeout in the middle of a
// sequence flushes the decoder instead. Other errors discard any partial
// sequence; io.EOF is returned unwrapped and the rest are wrapped.
func (d *Decoder) Next(r io.ByteReader) (Key, error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			if isTimeout(err) {
				if k, ok := d.Flush(); ok {
					return k, nil
				}
				return Key{}, err
			}
			d.reset()
			if errors.Is(err, io.EOF) {
				return Key{}, io.EOF
			}
			return Key{}, fmt.Errorf("reading key: %w", err)
		}
		if k, ok := d.Feed(b); ok {
			return k, nil
		}
	}
}

// isTimeout reports whether err signals an expired read window.
func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}

// ParseKey decodes a single complete input sequence. Bytes after the first
// complete key are ignored; an unterminated sequence yields a literal ESC
// and an empty string a literal NUL.
func ParseKey(data string) Key {
	var d Decoder
	for i := 0; i < len(data); i++ {
		if k, ok := d.Feed(data[i]); ok {
			return k
		}
	}
	if k, ok := d.Flush(); ok {
		return k
	}
	return Key{Type: KeyChar}
}
