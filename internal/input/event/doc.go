// Package event defines the canonical, backend-independent input event
// model for the engine.
//
// Every input backend (terminal byte stream, event-driven host, polled
// platform queue) produces values of the same five event variants, so
// downstream consumers never need to know which backend is active:
//
//   - KeyEvent: a non-printable key, or a printable key reported raw
//   - TextEvent: completed printable text ready for insertion
//   - MouseEvent: a button press/release or wheel tick
//   - MouseMoveEvent: pointer motion
//   - ResizeEvent: a viewport size change
//
// KeyCode is a distinct integer domain, deliberately not interchangeable
// with rune values: literal ASCII codes cover the control and printable
// range, 1000+ covers navigation keys and 1100+ covers function keys, so
// no code collides with a Unicode code point.
//
// Normalize is the final pass every backend applies to a frame's batch.
// It collapses the key/text duplication that event-driven hosts exhibit
// for printable keys, guaranteeing that printable characters appear only
// as TextEvent and special keys only as KeyEvent.
package event
