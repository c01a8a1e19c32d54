// Package backend contains the input adapters that feed the engine's
// canonical event stream.
//
// Every adapter implements the same small contract, Backend: a Poll that
// returns one frame's worth of canonical events, already normalized.
// The four adapters cover the ways a host can deliver input:
//
//   - Terminal: raw escape-sequence bytes read non-blocking from a TTY,
//     parsed by the ansi package.
//   - Queue: an event-driven host (a browser) pushes events through
//     callbacks; Poll drains the per-frame queue.
//   - Platform: a polled native event queue delivering physical scan
//     codes, mapped into the logical key space.
//   - Screen: a tcell event queue, the convenience adapter for running
//     locally.
//
// Backends are wired once at construction by the input facade; nothing
// downstream can observe which adapter is active.
package backend
