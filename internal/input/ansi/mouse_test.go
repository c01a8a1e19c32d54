package ansi

import (
	"reflect"
	"testing"

	"github.com/storyforge/runebook/internal/input/event"
)

func TestSGRMouseButtons(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []event.Event
	}{
		{
			"left press",
			"\x1b[<0;10;5M",
			[]event.Event{event.MouseEvent{Button: event.ButtonLeft, X: 9, Y: 4, Action: event.ActionPress}},
		},
		{
			"left release",
			"\x1b[<0;10;5m",
			[]event.Event{event.MouseEvent{Button: event.ButtonLeft, X: 9, Y: 4, Action: event.ActionRelease}},
		},
		{
			"middle press",
			"\x1b[<1;1;1M",
			[]event.Event{event.MouseEvent{Button: event.ButtonMiddle, X: 0, Y: 0, Action: event.ActionPress}},
		},
		{
			"right press",
			"\x1b[<2;1;1M",
			[]event.Event{event.MouseEvent{Button: event.ButtonRight, X: 0, Y: 0, Action: event.ActionPress}},
		},
		{
			"no-button code reports nothing",
			"\x1b[<3;1;1M",
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestParser()
			got := p.Feed([]byte(tt.in))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Feed(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSGRMouseModifiers(t *testing.T) {
	tests := []struct {
		in   string
		mods event.Modifier
	}{
		{"\x1b[<4;2;2M", event.ModShift},
		{"\x1b[<8;2;2M", event.ModAlt},
		{"\x1b[<16;2;2M", event.ModCtrl},
		{"\x1b[<20;2;2M", event.ModShift | event.ModCtrl},
	}
	for _, tt := range tests {
		p, _ := newTestParser()
		got := p.Feed([]byte(tt.in))
		want := []event.Event{event.MouseEvent{Button: event.ButtonLeft, X: 1, Y: 1, Mods: tt.mods, Action: event.ActionPress}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Feed(%q) = %v, want %v", tt.in, got, want)
		}
	}
}

func TestSGRMouseMotion(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []event.Event
	}{
		{
			"pure motion",
			"\x1b[<35;4;6M",
			[]event.Event{event.MouseMoveEvent{X: 3, Y: 5}},
		},
		{
			"drag is motion without a button",
			"\x1b[<32;4;6M",
			[]event.Event{event.MouseMoveEvent{X: 3, Y: 5}},
		},
		{
			"motion with modifier",
			"\x1b[<51;4;6M",
			[]event.Event{event.MouseMoveEvent{X: 3, Y: 5, Mods: event.ModCtrl}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestParser()
			got := p.Feed([]byte(tt.in))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Feed(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSGRMouseWheel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []event.Event
	}{
		{
			"wheel up",
			"\x1b[<64;3;3M",
			[]event.Event{event.MouseEvent{Button: event.ButtonScrollUp, X: 2, Y: 2, Action: event.ActionPress}},
		},
		{
			"wheel down",
			"\x1b[<65;3;3M",
			[]event.Event{event.MouseEvent{Button: event.ButtonScrollDown, X: 2, Y: 2, Action: event.ActionPress}},
		},
		{
			// Some terminals report wheel with the release final; a wheel
			// tick is still a press.
			"wheel with release final",
			"\x1b[<64;3;3m",
			[]event.Event{event.MouseEvent{Button: event.ButtonScrollUp, X: 2, Y: 2, Action: event.ActionPress}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestParser()
			got := p.Feed([]byte(tt.in))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Feed(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSGRMouseMalformed(t *testing.T) {
	tests := []string{
		"\x1b[<0;10M",      // too few parameters
		"\x1b[<0;1;2;3M",   // too many parameters
		"\x1b[0;10;5M",     // missing leader
		"\x1b[<0;10;5;M", // trailing separator adds a fourth slot
	}
	for _, in := range tests {
		p, _ := newTestParser()
		if got := p.Feed([]byte(in)); got != nil {
			t.Errorf("Feed(%q) = %v, want nil", in, got)
		}
	}
}
