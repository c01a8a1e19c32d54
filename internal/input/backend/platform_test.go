package backend

import (
	"reflect"
	"testing"

	"github.com/storyforge/runebook/internal/input/event"
)

// fakePlatform is a scripted native event queue.
type fakePlatform struct {
	records []Record
	mods    event.Modifier
	closed  bool
}

func (f *fakePlatform) NextRecord() (Record, bool) {
	if len(f.records) == 0 {
		return Record{}, false
	}
	rec := f.records[0]
	f.records = f.records[1:]
	return rec, true
}

func (f *fakePlatform) Modifiers() event.Modifier { return f.mods }

func (f *fakePlatform) Close() error {
	f.closed = true
	return nil
}

func TestPlatformPrintableKeyBecomesText(t *testing.T) {
	src := &fakePlatform{records: []Record{{Kind: RecordKeyDown, Scan: ScanA}}}
	p := NewPlatform(src)

	got := p.Poll()
	want := []event.Event{event.TextEvent{Text: "a"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Poll() = %v, want %v", got, want)
	}
}

func TestPlatformShiftSubstitution(t *testing.T) {
	src := &fakePlatform{
		records: []Record{{Kind: RecordKeyDown, Scan: Scan1}},
		mods:    event.ModShift,
	}
	p := NewPlatform(src)

	got := p.Poll()
	want := []event.Event{event.TextEvent{Text: "!", Mods: event.ModShift}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Poll() = %v, want %v", got, want)
	}
}

func TestPlatformChordedKey(t *testing.T) {
	src := &fakePlatform{
		records: []Record{{Kind: RecordKeyDown, Scan: ScanS}},
		mods:    event.ModCtrl,
	}
	p := NewPlatform(src)

	got := p.Poll()
	want := []event.Event{
		event.KeyEvent{Code: event.KeyFromRune('s'), Mods: event.ModCtrl, Action: event.ActionPress},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Poll() = %v, want %v", got, want)
	}
}

func TestPlatformKeyLifecycle(t *testing.T) {
	src := &fakePlatform{records: []Record{
		{Kind: RecordKeyDown, Scan: ScanUp},
		{Kind: RecordKeyRepeat, Scan: ScanUp},
		{Kind: RecordKeyUp, Scan: ScanUp},
	}}
	p := NewPlatform(src)

	got := p.Poll()
	want := []event.Event{
		event.KeyEvent{Code: event.KeyUp, Action: event.ActionPress},
		event.KeyEvent{Code: event.KeyUp, Action: event.ActionRepeat},
		event.KeyEvent{Code: event.KeyUp, Action: event.ActionRelease},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Poll() = %v, want %v", got, want)
	}
}

func TestPlatformUnknownScanDropped(t *testing.T) {
	src := &fakePlatform{records: []Record{
		{Kind: RecordKeyDown, Scan: ScanNone},
		{Kind: RecordKeyUp, Scan: ScanNone},
	}}
	p := NewPlatform(src)

	if got := p.Poll(); got != nil {
		t.Fatalf("Poll() = %v, want nil", got)
	}
}

func TestPlatformMouseAndWheel(t *testing.T) {
	src := &fakePlatform{records: []Record{
		{Kind: RecordMouseDown, Button: event.ButtonRight, X: 2, Y: 5},
		{Kind: RecordMouseMove, X: 3, Y: 5},
		{Kind: RecordMouseUp, Button: event.ButtonRight, X: 3, Y: 5},
		{Kind: RecordWheel, DY: -1, X: 3, Y: 5},
		{Kind: RecordWheel, DY: 3, X: 3, Y: 5},
		{Kind: RecordWheel, DY: 0, X: 3, Y: 5},
	}}
	p := NewPlatform(src)

	got := p.Poll()
	want := []event.Event{
		event.MouseEvent{Button: event.ButtonRight, X: 2, Y: 5, Action: event.ActionPress},
		event.MouseMoveEvent{X: 3, Y: 5},
		event.MouseEvent{Button: event.ButtonRight, X: 3, Y: 5, Action: event.ActionRelease},
		event.MouseEvent{Button: event.ButtonScrollUp, X: 3, Y: 5, Action: event.ActionPress},
		event.MouseEvent{Button: event.ButtonScrollDown, X: 3, Y: 5, Action: event.ActionPress},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Poll() = %v, want %v", got, want)
	}
}

func TestPlatformResize(t *testing.T) {
	src := &fakePlatform{records: []Record{{Kind: RecordResize, Width: 132, Height: 43}}}
	p := NewPlatform(src)

	got := p.Poll()
	want := []event.Event{event.ResizeEvent{Width: 132, Height: 43}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Poll() = %v, want %v", got, want)
	}
}

func TestPlatformClose(t *testing.T) {
	src := &fakePlatform{}
	p := NewPlatform(src)
	if err := p.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if !src.closed {
		t.Fatal("Close() did not reach the source")
	}
}
