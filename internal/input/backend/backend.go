package backend

import "github.com/storyforge/runebook/internal/input/event"

// Backend is the contract every input adapter implements. Poll is
// called once per application frame from the main loop; it never
// blocks, and the batch it returns is fully normalized, so callers
// apply no further processing.
type Backend interface {
	// Poll returns the events that arrived since the previous call.
	// An empty frame returns nil.
	Poll() []event.Event

	// Close releases the adapter's resources and, where applicable,
	// restores the host terminal.
	Close() error
}
