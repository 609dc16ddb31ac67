// ABOUTME: Declarative CSI tables mapping escape sequence bytes to key types.
// ABOUTME: Covers arrows, Home/End finals and the digit+tilde editing keys.

package key

// csiFinals maps the byte following "ESC [" to a key when it terminates the
// sequence on its own.
var csiFinals = map[byte]KeyType{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// csiTilde maps the digit of an "ESC [ <digit> ~" sequence to a key. Digits
// missing here fall back to a passthrough of the closing '~'.
var csiTilde = map[byte]KeyType{
	'1': KeyHome,
	'7': KeyHome,
	'3': KeyDelete,
	'4': KeyEnd,
	'8': KeyEnd,
	'5': KeyPageUp,
	'6': KeyPageDown,
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
