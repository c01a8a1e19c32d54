package ansi

import "github.com/storyforge/runebook/internal/input/event"

// SGR mouse report button-field bits.
const (
	sgrButtonMask = 0x03
	sgrModShift   = 4
	sgrModAlt     = 8
	sgrModCtrl    = 16
	sgrMotion     = 32
	sgrWheel      = 64
)

// decodeSGRMouse decodes a "CSI < b ; x ; y M|m" mouse report. The low
// two bits of b select the button, bit 5 marks motion, bit 6 marks a
// wheel tick, and the bits between encode modifiers. Coordinates arrive
// 1-based and leave 0-based. Final 'M' is a press, 'm' a release; wheel
// ticks are always presses.
func decodeSGRMouse(leader []byte, params []param, final byte) (event.Event, bool) {
	if len(leader) != 1 || leader[0] != '<' || len(params) != 3 {
		return nil, false
	}

	b := paramAt(params, 0, 0)
	x := paramAt(params, 1, 1) - 1
	y := paramAt(params, 2, 1) - 1

	var mods event.Modifier
	if b&sgrModShift != 0 {
		mods = mods.With(event.ModShift)
	}
	if b&sgrModAlt != 0 {
		mods = mods.With(event.ModAlt)
	}
	if b&sgrModCtrl != 0 {
		mods = mods.With(event.ModCtrl)
	}

	if b&sgrMotion != 0 {
		return event.MouseMoveEvent{X: x, Y: y, Mods: mods}, true
	}

	if b&sgrWheel != 0 {
		button := event.ButtonScrollUp
		if b&1 != 0 {
			button = event.ButtonScrollDown
		}
		return event.MouseEvent{Button: button, X: x, Y: y, Mods: mods, Action: event.ActionPress}, true
	}

	var button event.Button
	switch b & sgrButtonMask {
	case 0:
		button = event.ButtonLeft
	case 1:
		button = event.ButtonMiddle
	case 2:
		button = event.ButtonRight
	default:
		// Legacy "no button" encoding; SGR reports release via the
		// final byte instead, so there is nothing to report here.
		return nil, false
	}

	action := event.ActionPress
	if final == 'm' {
		action = event.ActionRelease
	}
	return event.MouseEvent{Button: button, X: x, Y: y, Mods: mods, Action: action}, true
}
