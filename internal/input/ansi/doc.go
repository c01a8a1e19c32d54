// Package ansi converts a raw terminal byte stream into canonical input
// events.
//
// The Parser is a continuously running state machine over an untrusted
// byte stream: C0/C1 control codes, ESC-prefixed sequences, structured
// CSI sequences (leader bytes, numeric parameters, intermediates, final
// byte), SGR mouse reports, legacy SS3 function keys, and UTF-8 text
// that may be split across reads.
//
// Malformed input never fails loudly. Unterminated or malformed CSI
// sequences abort silently, unknown final bytes decode to nothing, and
// invalid UTF-8 degrades to single-byte scanning, so the parser always
// makes forward progress. The worst outcome of garbage input is a
// dropped event.
//
// A lone ESC byte is ambiguous: it may be a bare Escape keystroke or the
// start of a longer sequence. Feed leaves the parser in its escape state
// when a read ends there; Tick resolves the ambiguity on a later empty
// poll once the configured timeout has elapsed. Resolution latency is
// therefore bounded by the poll interval, which is an accepted property
// of the polling design.
package ansi
