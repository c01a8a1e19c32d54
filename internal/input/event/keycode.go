package event

import "fmt"

// KeyCode identifies a logical key. It is a distinct type rather than a
// rune so that logical key codes and raw character codes cannot be mixed
// without an explicit conversion.
//
// The numeric layout is a stable contract: the control and printable
// codes are literal ASCII, navigation keys live at 1000+, and function
// keys at 1100+. No range collides with a Unicode code point, so a single
// KeyCode field can carry either domain unambiguously.
type KeyCode int

// Control keys, using their literal ASCII codes.
const (
	KeyNone      KeyCode = 0
	KeyBackspace KeyCode = 8
	KeyTab       KeyCode = 9
	KeyEnter     KeyCode = 13
	KeyEscape    KeyCode = 27
	KeySpace     KeyCode = 32
	KeyDelete    KeyCode = 127
)

// Navigation keys.
const (
	KeyUp KeyCode = 1000 + iota
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
)

// Function keys.
const (
	KeyF1 KeyCode = 1100 + iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// KeyFromRune converts a character to its key code. This is the only
// sanctioned crossing from the character domain into the key domain.
func KeyFromRune(r rune) KeyCode {
	return KeyCode(r)
}

// Rune returns the character a printable key code represents.
// ok is false for non-printable codes.
func (k KeyCode) Rune() (r rune, ok bool) {
	if !k.IsPrintable() {
		return 0, false
	}
	return rune(k), true
}

// IsPrintable reports whether the code is in the printable ASCII range.
func (k KeyCode) IsPrintable() bool {
	return k >= 32 && k <= 126
}

// IsNavigation reports whether the code is a navigation key.
func (k KeyCode) IsNavigation() bool {
	return k >= KeyUp && k <= KeyInsert
}

// IsFunction reports whether the code is a function key.
func (k KeyCode) IsFunction() bool {
	return k >= KeyF1 && k <= KeyF12
}

// String returns a human-readable name for the key code.
func (k KeyCode) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyBackspace:
		return "Backspace"
	case KeyTab:
		return "Tab"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeySpace:
		return "Space"
	case KeyDelete:
		return "Delete"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyInsert:
		return "Insert"
	}
	if k.IsFunction() {
		return fmt.Sprintf("F%d", int(k-KeyF1)+1)
	}
	if k.IsPrintable() {
		return string(rune(k))
	}
	return fmt.Sprintf("Key(%d)", int(k))
}
