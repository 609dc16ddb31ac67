// ABOUTME: Defines the Key type produced by the decoder for raw terminal input.
// ABOUTME: A key is either a literal byte or one of the navigation/editing keys.

package key

import "fmt"

// Key represents one decoded keyboard input event.
type Key struct {
	Type KeyType
	Byte byte // For KeyChar
	// Passthrough is set when Byte came from an escape sequence the decoder
	// did not recognize.
	Passthrough bool
}

// KeyType enumerates the kinds of key events the decoder can produce.
type KeyType int

const (
	KeyChar     KeyType = iota // Literal byte
	KeyUp                      // Arrow up
	KeyDown                    // Arrow down
	KeyLeft                    // Arrow left
	KeyRight                   // Arrow right
	KeyHome                    // Home
	KeyEnd                     // End
	KeyPageUp                  // Page Up
	KeyPageDown                // Page Down
	KeyDelete                  // Delete key
)

// Escape is the byte that introduces every multi-byte key sequence.
const Escape byte = 0x1b

// Char returns a literal key for b.
func Char(b byte) Key {
	return Key{Type: KeyChar, Byte: b}
}

// passthrough returns a literal key for a byte taken out of an unrecognized
// escape sequence.
func passthrough(b byte) Key {
	return Key{Type: KeyChar, Byte: b, Passthrough: true}
}

var keyTypeNames = map[KeyType]string{
	KeyUp:       "Up",
	KeyDown:     "Down",
	KeyLeft:     "Left",
	KeyRight:    "Right",
	KeyHome:     "Home",
	KeyEnd:      "End",
	KeyPageUp:   "PageUp",
	KeyPageDown: "PageDown",
	KeyDelete:   "Delete",
}

// String returns a human-readable representation of the Key for debug logs.
func (k Key) String() string {
	if k.Type != KeyChar {
		if name, ok := keyTypeNames[k.Type]; ok {
			return name
		}
		return "Unknown"
	}
	s := fmt.Sprintf("0x%02x", k.Byte)
	if k.Byte >= 0x20 && k.Byte <= 0x7e {
		s = fmt.Sprintf("%q", rune(k.Byte))
	}
	if k.Passthrough {
		s += " (passthrough)"
	}
	return s
}
