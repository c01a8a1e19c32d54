package event

import (
	"fmt"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Action describes what happened to a key or button.
type Action uint8

const (
	// ActionPress indicates a press.
	ActionPress Action = iota
	// ActionRelease indicates a release.
	ActionRelease
	// ActionRepeat indicates an auto-repeat of a held key.
	ActionRepeat
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionRepeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// Button identifies a mouse button or wheel direction.
type Button uint8

const (
	// ButtonLeft is the primary mouse button.
	ButtonLeft Button = iota
	// ButtonMiddle is the middle button (wheel click).
	ButtonMiddle
	// ButtonRight is the secondary mouse button.
	ButtonRight
	// ButtonScrollUp is a wheel tick away from the user.
	ButtonScrollUp
	// ButtonScrollDown is a wheel tick toward the user.
	ButtonScrollDown
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonScrollUp:
		return "scroll-up"
	case ButtonScrollDown:
		return "scroll-down"
	default:
		return "unknown"
	}
}

// IsScroll reports whether the button is a wheel direction.
func (b Button) IsScroll() bool {
	return b == ButtonScrollUp || b == ButtonScrollDown
}

// Event is the canonical input event. It is a closed union: the only
// implementations are the five variants in this package, and consumers
// are expected to switch exhaustively over them.
type Event interface {
	// String returns a human-readable form for logs and tests.
	String() string

	inputEvent()
}

// KeyEvent is a key press, release, or repeat. Printable keys reach
// consumers as KeyEvent only from backends that report keys raw; after
// normalization a printable keystroke is represented by its TextEvent.
type KeyEvent struct {
	Code   KeyCode
	Mods   Modifier
	Action Action
}

func (KeyEvent) inputEvent() {}

// String returns a form like "key(Ctrl+Up press)".
func (e KeyEvent) String() string {
	if e.Mods.IsEmpty() {
		return fmt.Sprintf("key(%s %s)", e.Code, e.Action)
	}
	return fmt.Sprintf("key(%s+%s %s)", e.Mods, e.Code, e.Action)
}

// TextEvent carries one or more completed printable characters. A single
// event may hold a whole paste burst; it never holds a partial code point.
type TextEvent struct {
	Text string
	Mods Modifier
}

func (TextEvent) inputEvent() {}

// String returns a form like `text("abc")`.
func (e TextEvent) String() string {
	return fmt.Sprintf("text(%q)", e.Text)
}

// FirstRune returns the first code point of the text, or utf8.RuneError
// if the event is empty.
func (e TextEvent) FirstRune() rune {
	r, _ := utf8.DecodeRuneInString(e.Text)
	return r
}

// GraphemeCount returns the number of user-perceived characters in the
// text, which can be fewer than its code points.
func (e TextEvent) GraphemeCount() int {
	return uniseg.GraphemeClusterCount(e.Text)
}

// MouseEvent is a button press, release, or wheel tick. Coordinates are
// zero-based cells.
type MouseEvent struct {
	Button Button
	X, Y   int
	Mods   Modifier
	Action Action
}

func (MouseEvent) inputEvent() {}

// String returns a form like "mouse(left press @3,7)".
func (e MouseEvent) String() string {
	return fmt.Sprintf("mouse(%s %s @%d,%d)", e.Button, e.Action, e.X, e.Y)
}

// MouseMoveEvent is pointer motion, with or without a held button.
type MouseMoveEvent struct {
	X, Y int
	Mods Modifier
}

func (MouseMoveEvent) inputEvent() {}

// String returns a form like "move(@3,7)".
func (e MouseMoveEvent) String() string {
	return fmt.Sprintf("move(@%d,%d)", e.X, e.Y)
}

// ResizeEvent reports a new viewport size in cells.
type ResizeEvent struct {
	Width, Height int
}

func (ResizeEvent) inputEvent() {}

// String returns a form like "resize(80x24)".
func (e ResizeEvent) String() string {
	return fmt.Sprintf("resize(%dx%d)", e.Width, e.Height)
}
