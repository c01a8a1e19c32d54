package backend

import (
	"reflect"
	"testing"

	"github.com/storyforge/runebook/internal/input/event"
)

func TestQueuePrintableKeyCollapsesToText(t *testing.T) {
	q := NewQueue()
	q.KeyDown(event.KeyFromRune('a'), 0)

	got := q.Poll()
	want := []event.Event{event.TextEvent{Text: "a"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Poll() = %v, want %v", got, want)
	}
}

func TestQueueChordedKeySurvives(t *testing.T) {
	q := NewQueue()
	q.KeyDown(event.KeyFromRune('s'), event.ModCtrl)

	got := q.Poll()
	want := []event.Event{
		event.KeyEvent{Code: event.KeyFromRune('s'), Mods: event.ModCtrl, Action: event.ActionPress},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Poll() = %v, want %v", got, want)
	}
}

func TestQueueShiftedKeyStillTypes(t *testing.T) {
	q := NewQueue()
	q.KeyDown(event.KeyFromRune('A'), event.ModShift)

	got := q.Poll()
	want := []event.Event{event.TextEvent{Text: "A", Mods: event.ModShift}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Poll() = %v, want %v", got, want)
	}
}

func TestQueueSpecialKey(t *testing.T) {
	q := NewQueue()
	q.KeyDown(event.KeyUp, 0)
	q.KeyUp(event.KeyUp, 0)

	got := q.Poll()
	want := []event.Event{
		event.KeyEvent{Code: event.KeyUp, Action: event.ActionPress},
		event.KeyEvent{Code: event.KeyUp, Action: event.ActionRelease},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Poll() = %v, want %v", got, want)
	}
}

func TestQueueRepeatTypesText(t *testing.T) {
	q := NewQueue()
	q.KeyRepeat(event.KeyFromRune('x'), 0)

	got := q.Poll()
	want := []event.Event{event.TextEvent{Text: "x"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Poll() = %v, want %v", got, want)
	}
}

func TestQueueTextInput(t *testing.T) {
	q := NewQueue()
	q.TextInput("héllo", 0)
	q.TextInput("", 0)

	got := q.Poll()
	want := []event.Event{event.TextEvent{Text: "héllo"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Poll() = %v, want %v", got, want)
	}
}

func TestQueueMouse(t *testing.T) {
	q := NewQueue()
	q.MouseDown(event.ButtonLeft, 3, 7, 0)
	q.MouseMove(4, 7, 0)
	q.MouseUp(event.ButtonLeft, 4, 7, 0)
	q.Wheel(-1, 4, 7, 0)
	q.Wheel(2, 4, 7, 0)
	q.Wheel(0, 4, 7, 0)

	got := q.Poll()
	want := []event.Event{
		event.MouseEvent{Button: event.ButtonLeft, X: 3, Y: 7, Action: event.ActionPress},
		event.MouseMoveEvent{X: 4, Y: 7},
		event.MouseEvent{Button: event.ButtonLeft, X: 4, Y: 7, Action: event.ActionRelease},
		event.MouseEvent{Button: event.ButtonScrollUp, X: 4, Y: 7, Action: event.ActionPress},
		event.MouseEvent{Button: event.ButtonScrollDown, X: 4, Y: 7, Action: event.ActionPress},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Poll() = %v, want %v", got, want)
	}
}

func TestQueueResize(t *testing.T) {
	q := NewQueue()
	q.Resized(80, 24)

	got := q.Poll()
	want := []event.Event{event.ResizeEvent{Width: 80, Height: 24}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Poll() = %v, want %v", got, want)
	}
}

func TestQueuePollDrains(t *testing.T) {
	q := NewQueue()
	q.Resized(80, 24)
	q.Poll()
	if got := q.Poll(); got != nil {
		t.Fatalf("second Poll() = %v, want nil", got)
	}
}
