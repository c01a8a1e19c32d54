package event

import "strings"

// Modifier is a bit set of modifier keys. The bit order matches the CSI
// modifier sub-parameter convention (value = mods+1 on the wire) and the
// SGR mouse modifier bits, so wire decoding is a shift and a mask.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << 0

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt Modifier = 1 << 1

	// ModCtrl indicates the Control key.
	ModCtrl Modifier = 1 << 2

	// ModSuper indicates the Super key (Cmd on macOS, Win on Windows).
	ModSuper Modifier = 1 << 3
)

// Has reports whether m contains the given modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift reports whether Shift is pressed.
func (m Modifier) HasShift() bool { return m.Has(ModShift) }

// HasAlt reports whether Alt is pressed.
func (m Modifier) HasAlt() bool { return m.Has(ModAlt) }

// HasCtrl reports whether Control is pressed.
func (m Modifier) HasCtrl() bool { return m.Has(ModCtrl) }

// HasSuper reports whether Super is pressed.
func (m Modifier) HasSuper() bool { return m.Has(ModSuper) }

// With returns m with the given modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns m with the given modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty reports whether no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a representation like "Ctrl+Shift".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.HasSuper() {
		parts = append(parts, "Super")
	}
	return strings.Join(parts, "+")
}
