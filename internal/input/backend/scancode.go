package backend

import "github.com/storyforge/runebook/internal/input/event"

// ScanCode identifies a physical key position on the native platform,
// independent of keyboard layout. It is a distinct type from
// event.KeyCode so the physical and logical domains cannot be mixed
// without going through the mapping below.
//
// The ordering follows the USB HID usage tables that native event
// queues report: letters first, then digits 1-9 and 0, then the
// editing, function, and navigation blocks.
type ScanCode int

// Letter keys.
const (
	ScanNone ScanCode = iota
	ScanA
	ScanB
	ScanC
	ScanD
	ScanE
	ScanF
	ScanG
	ScanH
	ScanI
	ScanJ
	ScanK
	ScanL
	ScanM
	ScanN
	ScanO
	ScanP
	ScanQ
	ScanR
	ScanS
	ScanT
	ScanU
	ScanV
	ScanW
	ScanX
	ScanY
	ScanZ
)

// Digit keys, in the HID order 1..9 then 0.
const (
	Scan1 ScanCode = ScanZ + 1 + iota
	Scan2
	Scan3
	Scan4
	Scan5
	Scan6
	Scan7
	Scan8
	Scan9
	Scan0
)

// Editing and punctuation keys.
const (
	ScanEnter ScanCode = Scan0 + 1 + iota
	ScanEscape
	ScanBackspace
	ScanTab
	ScanSpace
	ScanMinus
	ScanEquals
	ScanLeftBracket
	ScanRightBracket
	ScanBackslash
	ScanSemicolon
	ScanApostrophe
	ScanGrave
	ScanComma
	ScanPeriod
	ScanSlash
)

// Function keys.
const (
	ScanF1 ScanCode = ScanSlash + 1 + iota
	ScanF2
	ScanF3
	ScanF4
	ScanF5
	ScanF6
	ScanF7
	ScanF8
	ScanF9
	ScanF10
	ScanF11
	ScanF12
)

// Navigation keys.
const (
	ScanInsert ScanCode = ScanF12 + 1 + iota
	ScanHome
	ScanPageUp
	ScanDelete
	ScanEnd
	ScanPageDown
	ScanRight
	ScanLeft
	ScanDown
	ScanUp
)

// scanSpecial maps non-printable scan codes straight to their logical
// keys.
var scanSpecial = map[ScanCode]event.KeyCode{
	ScanEnter:     event.KeyEnter,
	ScanEscape:    event.KeyEscape,
	ScanBackspace: event.KeyBackspace,
	ScanTab:       event.KeyTab,
	ScanDelete:    event.KeyDelete,
	ScanInsert:    event.KeyInsert,
	ScanHome:      event.KeyHome,
	ScanEnd:       event.KeyEnd,
	ScanPageUp:    event.KeyPageUp,
	ScanPageDown:  event.KeyPageDown,
	ScanUp:        event.KeyUp,
	ScanDown:      event.KeyDown,
	ScanLeft:      event.KeyLeft,
	ScanRight:     event.KeyRight,
}

// scanPunct maps punctuation scan codes to their unshifted characters.
var scanPunct = map[ScanCode]rune{
	ScanSpace:        ' ',
	ScanMinus:        '-',
	ScanEquals:       '=',
	ScanLeftBracket:  '[',
	ScanRightBracket: ']',
	ScanBackslash:    '\\',
	ScanSemicolon:    ';',
	ScanApostrophe:   '\'',
	ScanGrave:        '`',
	ScanComma:        ',',
	ScanPeriod:       '.',
	ScanSlash:        '/',
}

// digitShift is the US-layout symbol row for shifted digits 1..9, 0.
const digitShift = "!@#$%^&*()"

// punctShift maps unshifted punctuation to its shifted symbol.
var punctShift = map[rune]rune{
	'-':  '_',
	'=':  '+',
	'[':  '{',
	']':  '}',
	'\\': '|',
	';':  ':',
	'\'': '"',
	'`':  '~',
	',':  '<',
	'.':  '>',
	'/':  '?',
}

// KeyCode maps a physical scan code to its logical key, applying
// shift-based case and symbol substitution for printable keys. Letters
// and digits map through fixed offsets; everything else goes through
// the constant tables.
func (s ScanCode) KeyCode(mods event.Modifier) event.KeyCode {
	shift := mods.HasShift()

	switch {
	case s >= ScanA && s <= ScanZ:
		r := 'a' + rune(s-ScanA)
		if shift {
			r = 'A' + rune(s-ScanA)
		}
		return event.KeyFromRune(r)

	case s >= Scan1 && s <= Scan0:
		if shift {
			return event.KeyFromRune(rune(digitShift[s-Scan1]))
		}
		if s == Scan0 {
			return event.KeyFromRune('0')
		}
		return event.KeyFromRune('1' + rune(s-Scan1))

	case s >= ScanF1 && s <= ScanF12:
		return event.KeyF1 + event.KeyCode(s-ScanF1)
	}

	if r, ok := scanPunct[s]; ok {
		if shift {
			if sub, ok := punctShift[r]; ok {
				r = sub
			}
		}
		return event.KeyFromRune(r)
	}
	if code, ok := scanSpecial[s]; ok {
		return code
	}
	return event.KeyNone
}
