package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/storyforge/runebook/internal/input/event"
)

// Screen adapts a tcell event queue to the canonical stream. It is the
// adapter used when the engine runs against a local terminal through
// tcell rather than parsing raw bytes itself: tcell owns the TTY and
// this adapter only translates its event records.
//
// tcell reports mouse state rather than transitions, so the adapter
// tracks the previously seen button mask and pointer position to derive
// press, release, and move events.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	buttons tcell.ButtonMask
	mouseX  int
	mouseY  int
}

// NewScreen returns an adapter draining events from an initialized
// tcell screen. The adapter takes over event delivery; the screen's
// PollEvent must not be used concurrently.
func NewScreen(s tcell.Screen) *Screen {
	sc := &Screen{
		screen: s,
		events: make(chan tcell.Event, 128),
		quit:   make(chan struct{}),
		mouseX: -1,
		mouseY: -1,
	}
	go s.ChannelEvents(sc.events, sc.quit)
	return sc
}

// Poll drains whatever tcell has queued and returns the normalized
// batch.
func (s *Screen) Poll() []event.Event {
	var batch []event.Event
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return event.Normalize(batch)
			}
			batch = s.convert(batch, ev)
		default:
			return event.Normalize(batch)
		}
	}
}

// Close stops event delivery. Finalizing the screen is left to its
// owner.
func (s *Screen) Close() error {
	close(s.quit)
	return nil
}

func (s *Screen) convert(batch []event.Event, ev tcell.Event) []event.Event {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		return s.convertKey(batch, tev)
	case *tcell.EventMouse:
		return s.convertMouse(batch, tev)
	case *tcell.EventResize:
		w, h := tev.Size()
		return append(batch, event.ResizeEvent{Width: w, Height: h})
	default:
		return batch
	}
}

func (s *Screen) convertKey(batch []event.Event, ev *tcell.EventKey) []event.Event {
	mods := convertTcellMods(ev.Modifiers())

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if chorded(mods) {
			return append(batch, event.KeyEvent{Code: event.KeyFromRune(r), Mods: mods, Action: event.ActionPress})
		}
		code := event.KeyFromRune(r)
		if code.IsPrintable() {
			// Report both forms; normalization keeps the text, which is
			// how every backend represents a printable keystroke.
			batch = append(batch, event.KeyEvent{Code: code, Mods: mods, Action: event.ActionPress})
		}
		return append(batch, event.TextEvent{Text: string(r), Mods: mods})
	}

	var code event.KeyCode
	switch ev.Key() {
	case tcell.KeyEnter:
		code = event.KeyEnter
	case tcell.KeyEscape:
		code = event.KeyEscape
	case tcell.KeyTab:
		code = event.KeyTab
	case tcell.KeyBacktab:
		code = event.KeyTab
		mods = mods.With(event.ModShift)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		code = event.KeyBackspace
	case tcell.KeyDelete:
		code = event.KeyDelete
	case tcell.KeyInsert:
		code = event.KeyInsert
	case tcell.KeyUp:
		code = event.KeyUp
	case tcell.KeyDown:
		code = event.KeyDown
	case tcell.KeyLeft:
		code = event.KeyLeft
	case tcell.KeyRight:
		code = event.KeyRight
	case tcell.KeyHome:
		code = event.KeyHome
	case tcell.KeyEnd:
		code = event.KeyEnd
	case tcell.KeyPgUp:
		code = event.KeyPageUp
	case tcell.KeyPgDn:
		code = event.KeyPageDown
	default:
		k := ev.Key()
		switch {
		case k >= tcell.KeyF1 && k <= tcell.KeyF12:
			code = event.KeyF1 + event.KeyCode(k-tcell.KeyF1)
		case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
			code = event.KeyFromRune('a' + rune(k-tcell.KeyCtrlA))
			mods = mods.With(event.ModCtrl)
		default:
			return batch
		}
	}
	return append(batch, event.KeyEvent{Code: code, Mods: mods, Action: event.ActionPress})
}

func (s *Screen) convertMouse(batch []event.Event, ev *tcell.EventMouse) []event.Event {
	x, y := ev.Position()
	mods := convertTcellMods(ev.Modifiers())
	mask := ev.Buttons()

	if mask&tcell.WheelUp != 0 {
		batch = append(batch, event.MouseEvent{Button: event.ButtonScrollUp, X: x, Y: y, Mods: mods, Action: event.ActionPress})
	}
	if mask&tcell.WheelDown != 0 {
		batch = append(batch, event.MouseEvent{Button: event.ButtonScrollDown, X: x, Y: y, Mods: mods, Action: event.ActionPress})
	}

	held := mask & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	transitions := false
	for _, m := range [...]struct {
		mask   tcell.ButtonMask
		button event.Button
	}{
		{tcell.Button1, event.ButtonLeft},
		{tcell.Button3, event.ButtonMiddle},
		{tcell.Button2, event.ButtonRight},
	} {
		was := s.buttons&m.mask != 0
		now := held&m.mask != 0
		switch {
		case now && !was:
			batch = append(batch, event.MouseEvent{Button: m.button, X: x, Y: y, Mods: mods, Action: event.ActionPress})
			transitions = true
		case was && !now:
			batch = append(batch, event.MouseEvent{Button: m.button, X: x, Y: y, Mods: mods, Action: event.ActionRelease})
			transitions = true
		}
	}

	if !transitions && (x != s.mouseX || y != s.mouseY) {
		batch = append(batch, event.MouseMoveEvent{X: x, Y: y, Mods: mods})
	}

	s.buttons = held
	s.mouseX, s.mouseY = x, y
	return batch
}

func convertTcellMods(m tcell.ModMask) event.Modifier {
	var mods event.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(event.ModShift)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(event.ModAlt)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(event.ModCtrl)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(event.ModSuper)
	}
	return mods
}
