// Package dispatch routes canonical input events to application
// handlers. Handlers subscribe with a priority; each event walks the
// chain in priority order and stops at the first handler that reports
// it consumed. A panicking handler is recovered and treated as not
// having consumed, so one bad handler cannot take down the frame loop.
package dispatch
