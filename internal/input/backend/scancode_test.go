package backend

import (
	"testing"

	"github.com/storyforge/runebook/internal/input/event"
)

func TestScanCodeLetters(t *testing.T) {
	tests := []struct {
		scan ScanCode
		mods event.Modifier
		want event.KeyCode
	}{
		{ScanA, 0, event.KeyFromRune('a')},
		{ScanA, event.ModShift, event.KeyFromRune('A')},
		{ScanZ, 0, event.KeyFromRune('z')},
		{ScanZ, event.ModShift, event.KeyFromRune('Z')},
		{ScanM, event.ModCtrl, event.KeyFromRune('m')},
	}
	for _, tt := range tests {
		if got := tt.scan.KeyCode(tt.mods); got != tt.want {
			t.Errorf("ScanCode(%d).KeyCode(%v) = %d, want %d", tt.scan, tt.mods, got, tt.want)
		}
	}
}

func TestScanCodeDigits(t *testing.T) {
	tests := []struct {
		scan ScanCode
		mods event.Modifier
		want event.KeyCode
	}{
		{Scan1, 0, event.KeyFromRune('1')},
		{Scan9, 0, event.KeyFromRune('9')},
		{Scan0, 0, event.KeyFromRune('0')},
		{Scan1, event.ModShift, event.KeyFromRune('!')},
		{Scan2, event.ModShift, event.KeyFromRune('@')},
		{Scan8, event.ModShift, event.KeyFromRune('*')},
		{Scan0, event.ModShift, event.KeyFromRune(')')},
	}
	for _, tt := range tests {
		if got := tt.scan.KeyCode(tt.mods); got != tt.want {
			t.Errorf("ScanCode(%d).KeyCode(%v) = %d, want %d", tt.scan, tt.mods, got, tt.want)
		}
	}
}

func TestScanCodePunctuation(t *testing.T) {
	tests := []struct {
		scan ScanCode
		mods event.Modifier
		want event.KeyCode
	}{
		{ScanSpace, 0, event.KeySpace},
		{ScanSpace, event.ModShift, event.KeySpace},
		{ScanMinus, 0, event.KeyFromRune('-')},
		{ScanMinus, event.ModShift, event.KeyFromRune('_')},
		{ScanSemicolon, event.ModShift, event.KeyFromRune(':')},
		{ScanSlash, event.ModShift, event.KeyFromRune('?')},
		{ScanGrave, event.ModShift, event.KeyFromRune('~')},
	}
	for _, tt := range tests {
		if got := tt.scan.KeyCode(tt.mods); got != tt.want {
			t.Errorf("ScanCode(%d).KeyCode(%v) = %d, want %d", tt.scan, tt.mods, got, tt.want)
		}
	}
}

func TestScanCodeSpecials(t *testing.T) {
	tests := []struct {
		scan ScanCode
		want event.KeyCode
	}{
		{ScanEnter, event.KeyEnter},
		{ScanEscape, event.KeyEscape},
		{ScanBackspace, event.KeyBackspace},
		{ScanTab, event.KeyTab},
		{ScanDelete, event.KeyDelete},
		{ScanInsert, event.KeyInsert},
		{ScanHome, event.KeyHome},
		{ScanEnd, event.KeyEnd},
		{ScanPageUp, event.KeyPageUp},
		{ScanPageDown, event.KeyPageDown},
		{ScanUp, event.KeyUp},
		{ScanDown, event.KeyDown},
		{ScanLeft, event.KeyLeft},
		{ScanRight, event.KeyRight},
	}
	for _, tt := range tests {
		if got := tt.scan.KeyCode(0); got != tt.want {
			t.Errorf("ScanCode(%d).KeyCode(0) = %d, want %d", tt.scan, got, tt.want)
		}
		// Shift never changes a special key.
		if got := tt.scan.KeyCode(event.ModShift); got != tt.want {
			t.Errorf("ScanCode(%d).KeyCode(Shift) = %d, want %d", tt.scan, got, tt.want)
		}
	}
}

func TestScanCodeFunctionKeys(t *testing.T) {
	if got := ScanF1.KeyCode(0); got != event.KeyF1 {
		t.Errorf("ScanF1.KeyCode(0) = %d, want %d", got, event.KeyF1)
	}
	if got := ScanF12.KeyCode(0); got != event.KeyF12 {
		t.Errorf("ScanF12.KeyCode(0) = %d, want %d", got, event.KeyF12)
	}
}

func TestScanCodeUnknown(t *testing.T) {
	if got := ScanNone.KeyCode(0); got != event.KeyNone {
		t.Errorf("ScanNone.KeyCode(0) = %d, want KeyNone", got)
	}
	if got := ScanCode(9999).KeyCode(0); got != event.KeyNone {
		t.Errorf("ScanCode(9999).KeyCode(0) = %d, want KeyNone", got)
	}
}
