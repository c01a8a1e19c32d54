package input

import (
	"github.com/storyforge/runebook/internal/input/backend"
	"github.com/storyforge/runebook/internal/input/event"
)

// Input is the single entry point the application polls for events.
// It holds exactly one backend; the choice is fixed at construction.
type Input struct {
	backend backend.Backend
}

// New wraps a backend adapter.
func New(b backend.Backend) *Input {
	return &Input{backend: b}
}

// Poll returns the events that arrived since the previous call. The
// batch is already normalized; an empty frame returns nil.
func (in *Input) Poll() []event.Event {
	return in.backend.Poll()
}

// Close shuts the backend down, restoring the host terminal where the
// backend owns one.
func (in *Input) Close() error {
	return in.backend.Close()
}
