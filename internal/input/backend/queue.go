package backend

import "github.com/storyforge/runebook/internal/input/event"

// Queue is the adapter for event-driven hosts such as a browser: there
// are no bytes to parse, so the host's native callbacks synthesize
// canonical events directly into a per-frame queue that Poll drains.
//
// A printable key-down deliberately enqueues both a KeyEvent and the
// matching TextEvent, reproducing the duplication a browser emits for
// the same keystroke (keydown plus input). The shared normalizer then
// collapses it exactly as it does for every other backend, which is
// what keeps the backends behaviorally identical.
//
// Callbacks and Poll run on the host's single-threaded event loop, so
// the queue needs no locking.
type Queue struct {
	events []event.Event
}

// NewQueue returns an empty event queue adapter.
func NewQueue() *Queue {
	return &Queue{}
}

// KeyDown records a key press. Printable keys without a chording
// modifier also enqueue their text.
func (q *Queue) KeyDown(code event.KeyCode, mods event.Modifier) {
	q.key(code, mods, event.ActionPress)
}

// KeyRepeat records an auto-repeat of a held key. Repeats of printable
// keys type text just as the initial press does.
func (q *Queue) KeyRepeat(code event.KeyCode, mods event.Modifier) {
	q.key(code, mods, event.ActionRepeat)
}

func (q *Queue) key(code event.KeyCode, mods event.Modifier, action event.Action) {
	q.events = append(q.events, event.KeyEvent{Code: code, Mods: mods, Action: action})
	if r, ok := code.Rune(); ok && !chorded(mods) {
		q.events = append(q.events, event.TextEvent{Text: string(r), Mods: mods})
	}
}

// KeyUp records a key release.
func (q *Queue) KeyUp(code event.KeyCode, mods event.Modifier) {
	q.events = append(q.events, event.KeyEvent{Code: code, Mods: mods, Action: event.ActionRelease})
}

// TextInput records completed text from the host (a paste, or text the
// host composed on the application's behalf).
func (q *Queue) TextInput(text string, mods event.Modifier) {
	if text == "" {
		return
	}
	q.events = append(q.events, event.TextEvent{Text: text, Mods: mods})
}

// MouseDown records a button press at cell x, y.
func (q *Queue) MouseDown(button event.Button, x, y int, mods event.Modifier) {
	q.events = append(q.events, event.MouseEvent{Button: button, X: x, Y: y, Mods: mods, Action: event.ActionPress})
}

// MouseUp records a button release at cell x, y.
func (q *Queue) MouseUp(button event.Button, x, y int, mods event.Modifier) {
	q.events = append(q.events, event.MouseEvent{Button: button, X: x, Y: y, Mods: mods, Action: event.ActionRelease})
}

// MouseMove records pointer motion.
func (q *Queue) MouseMove(x, y int, mods event.Modifier) {
	q.events = append(q.events, event.MouseMoveEvent{X: x, Y: y, Mods: mods})
}

// Wheel records a wheel tick; dy < 0 scrolls up, dy > 0 scrolls down.
func (q *Queue) Wheel(dy, x, y int, mods event.Modifier) {
	if dy == 0 {
		return
	}
	button := event.ButtonScrollDown
	if dy < 0 {
		button = event.ButtonScrollUp
	}
	q.events = append(q.events, event.MouseEvent{Button: button, X: x, Y: y, Mods: mods, Action: event.ActionPress})
}

// Resized records a viewport size change.
func (q *Queue) Resized(width, height int) {
	q.events = append(q.events, event.ResizeEvent{Width: width, Height: height})
}

// Poll drains and normalizes the queue.
func (q *Queue) Poll() []event.Event {
	if len(q.events) == 0 {
		return nil
	}
	batch := q.events
	q.events = nil
	return event.Normalize(batch)
}

// Close drops any queued events.
func (q *Queue) Close() error {
	q.events = nil
	return nil
}

// chorded reports whether mods include a modifier that turns a
// printable key into a command rather than text.
func chorded(mods event.Modifier) bool {
	return mods.HasCtrl() || mods.HasAlt() || mods.HasSuper()
}
