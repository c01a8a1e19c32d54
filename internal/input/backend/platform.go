package backend

import "github.com/storyforge/runebook/internal/input/event"

// RecordKind tags one native platform event record.
type RecordKind uint8

const (
	// RecordKeyDown is a physical key press.
	RecordKeyDown RecordKind = iota
	// RecordKeyUp is a physical key release.
	RecordKeyUp
	// RecordKeyRepeat is an auto-repeat of a held key.
	RecordKeyRepeat
	// RecordMouseDown is a mouse button press.
	RecordMouseDown
	// RecordMouseUp is a mouse button release.
	RecordMouseUp
	// RecordMouseMove is pointer motion.
	RecordMouseMove
	// RecordWheel is a wheel tick; DY < 0 scrolls up.
	RecordWheel
	// RecordResize is a window size change.
	RecordResize
)

// Record is one entry drained from a native platform event queue. Only
// the fields relevant to the record's kind are meaningful.
type Record struct {
	Kind   RecordKind
	Scan   ScanCode
	Button event.Button
	X, Y   int
	DY     int
	Width  int
	Height int
}

// Source is the native platform event queue a Platform adapter drains.
// Implementations wrap whatever the windowing layer provides.
type Source interface {
	// NextRecord pops the next queued record; ok is false once the
	// queue is empty for this frame.
	NextRecord() (rec Record, ok bool)

	// Modifiers returns the current modifier key state. The adapter
	// reads it once per poll and stamps it on every event of that poll.
	Modifiers() event.Modifier

	Close() error
}

// Platform adapts a polled native event queue to the canonical stream.
// Physical scan codes are mapped into the logical key space, printable
// keys get shift substitution applied, and printable presses enqueue
// their text alongside the key event so normalization treats this
// backend exactly like the event-driven one.
type Platform struct {
	src Source
}

// NewPlatform returns an adapter draining src.
func NewPlatform(src Source) *Platform {
	return &Platform{src: src}
}

// Poll drains the platform queue and returns the normalized batch.
func (p *Platform) Poll() []event.Event {
	mods := p.src.Modifiers()

	var batch []event.Event
	for {
		rec, ok := p.src.NextRecord()
		if !ok {
			break
		}
		batch = p.convert(batch, rec, mods)
	}
	return event.Normalize(batch)
}

func (p *Platform) convert(batch []event.Event, rec Record, mods event.Modifier) []event.Event {
	switch rec.Kind {
	case RecordKeyDown, RecordKeyRepeat:
		code := rec.Scan.KeyCode(mods)
		if code == event.KeyNone {
			return batch
		}
		action := event.ActionPress
		if rec.Kind == RecordKeyRepeat {
			action = event.ActionRepeat
		}
		batch = append(batch, event.KeyEvent{Code: code, Mods: mods, Action: action})
		if r, ok := code.Rune(); ok && !chorded(mods) {
			batch = append(batch, event.TextEvent{Text: string(r), Mods: mods})
		}

	case RecordKeyUp:
		code := rec.Scan.KeyCode(mods)
		if code == event.KeyNone {
			return batch
		}
		batch = append(batch, event.KeyEvent{Code: code, Mods: mods, Action: event.ActionRelease})

	case RecordMouseDown:
		batch = append(batch, event.MouseEvent{Button: rec.Button, X: rec.X, Y: rec.Y, Mods: mods, Action: event.ActionPress})

	case RecordMouseUp:
		batch = append(batch, event.MouseEvent{Button: rec.Button, X: rec.X, Y: rec.Y, Mods: mods, Action: event.ActionRelease})

	case RecordMouseMove:
		batch = append(batch, event.MouseMoveEvent{X: rec.X, Y: rec.Y, Mods: mods})

	case RecordWheel:
		if rec.DY == 0 {
			return batch
		}
		button := event.ButtonScrollDown
		if rec.DY < 0 {
			button = event.ButtonScrollUp
		}
		batch = append(batch, event.MouseEvent{Button: button, X: rec.X, Y: rec.Y, Mods: mods, Action: event.ActionPress})

	case RecordResize:
		batch = append(batch, event.ResizeEvent{Width: rec.Width, Height: rec.Height})
	}
	return batch
}

// Close closes the platform source.
func (p *Platform) Close() error {
	return p.src.Close()
}
