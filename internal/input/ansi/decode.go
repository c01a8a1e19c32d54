package ansi

import "github.com/storyforge/runebook/internal/input/event"

// c0Event maps a C0 control byte (or DEL) to a key event. ok is false
// for control bytes the engine has no interpretation for.
func c0Event(b byte, mods event.Modifier) (event.Event, bool) {
	switch b {
	case 0x7F:
		return event.KeyEvent{Code: event.KeyBackspace, Mods: mods, Action: event.ActionPress}, true
	case 0x08:
		return event.KeyEvent{Code: event.KeyBackspace, Mods: mods.With(event.ModCtrl), Action: event.ActionPress}, true
	case 0x09:
		return event.KeyEvent{Code: event.KeyTab, Mods: mods, Action: event.ActionPress}, true
	case 0x0A, 0x0D:
		return event.KeyEvent{Code: event.KeyEnter, Mods: mods, Action: event.ActionPress}, true
	}
	if b >= 0x01 && b <= 0x1A {
		// Ctrl+letter: the terminal sends the letter's position in the
		// alphabet.
		code := event.KeyCode('a' + rune(b) - 1)
		return event.KeyEvent{Code: code, Mods: mods.With(event.ModCtrl), Action: event.ActionPress}, true
	}
	return nil, false
}

// ss3Key maps the final byte of a legacy SS3 sequence (ESC O x) to a
// function key. Terminals that predate full CSI function-key reporting
// use this form for F1-F4.
func ss3Key(b byte) event.KeyCode {
	switch b {
	case 'P':
		return event.KeyF1
	case 'Q':
		return event.KeyF2
	case 'R':
		return event.KeyF3
	case 'S':
		return event.KeyF4
	default:
		return event.KeyNone
	}
}

// tildeKey is the legacy "CSI n ~" function-key table. 16 and 22 are
// unassigned on the wire.
func tildeKey(n int) event.KeyCode {
	switch n {
	case 3:
		return event.KeyDelete
	case 5:
		return event.KeyPageUp
	case 6:
		return event.KeyPageDown
	case 11, 12, 13, 14, 15:
		return event.KeyF1 + event.KeyCode(n-11)
	case 17, 18, 19, 20, 21:
		return event.KeyF6 + event.KeyCode(n-17)
	case 23:
		return event.KeyF11
	case 24:
		return event.KeyF12
	default:
		return event.KeyNone
	}
}

// paramAt returns parameter i, or def when the slot is absent or was
// left empty on the wire (";;" produces a slot that is present but not
// set, which still decodes to the default).
func paramAt(params []param, i, def int) int {
	if i >= len(params) || !params[i].set {
		return def
	}
	return params[i].value
}

// csiMods decodes the shared modifier sub-parameter convention: the
// second parameter carries mods+1 with the same bit layout as Modifier.
func csiMods(params []param) event.Modifier {
	v := paramAt(params, 1, 1)
	if v <= 1 {
		return event.ModNone
	}
	return event.Modifier(v-1) & (event.ModShift | event.ModAlt | event.ModCtrl | event.ModSuper)
}

// csiAction decodes the optional third sub-parameter: 1=press (default),
// 2=repeat, 3=release.
func csiAction(params []param) event.Action {
	switch paramAt(params, 2, 1) {
	case 2:
		return event.ActionRepeat
	case 3:
		return event.ActionRelease
	default:
		return event.ActionPress
	}
}

// decodeCSI maps a completed CSI sequence to at most one event. Unknown
// but well-formed sequences decode to nothing, which keeps the pipeline
// forward compatible with reports it does not yet interpret.
func decodeCSI(leader []byte, params []param, intermed []byte, final byte) (event.Event, bool) {
	_ = intermed // no recognized sequence carries intermediates

	if final == 'M' || final == 'm' {
		return decodeSGRMouse(leader, params, final)
	}

	mods := csiMods(params)
	action := csiAction(params)

	var code event.KeyCode
	switch final {
	case 'A':
		code = event.KeyUp
	case 'B':
		code = event.KeyDown
	case 'C':
		code = event.KeyRight
	case 'D':
		code = event.KeyLeft
	case 'F':
		code = event.KeyEnd
	case 'H':
		code = event.KeyHome
	case 'P':
		code = event.KeyF1
	case 'Q':
		code = event.KeyF2
	case 'S':
		code = event.KeyF4
	case 'Z':
		code = event.KeyTab
		mods = mods.With(event.ModShift)
	case '~':
		code = tildeKey(paramAt(params, 0, 0))
	case 'u':
		// Kitty-style generic key report: the first parameter is the
		// literal key code.
		if n := paramAt(params, 0, 0); n != 0 {
			code = event.KeyCode(n)
		}
	}

	if code == event.KeyNone {
		return nil, false
	}
	return event.KeyEvent{Code: code, Mods: mods, Action: action}, true
}
