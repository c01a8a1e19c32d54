package backend

import (
	"time"

	"github.com/storyforge/runebook/internal/input/ansi"
	"github.com/storyforge/runebook/internal/input/event"
)

// readBufSize is comfortably larger than any escape sequence and big
// enough that paste bursts need few reads.
const readBufSize = 4096

// ByteSource supplies raw terminal bytes without blocking.
type ByteSource interface {
	// ReadAvailable fills buf with whatever bytes are ready and returns
	// the count. A quiet stream returns 0 with a nil error.
	ReadAvailable(buf []byte) (int, error)

	Close() error
}

// ResizeSource is implemented by byte sources that can report viewport
// size changes (a TTY under SIGWINCH).
type ResizeSource interface {
	// PendingResize reports a size change observed since the last call.
	PendingResize() (width, height int, ok bool)
}

// Terminal parses a raw terminal byte stream into canonical events. It
// owns the session's single ansi.Parser; all escape-sequence, UTF-8,
// and bare-Escape state lives there and survives across polls.
type Terminal struct {
	src    ByteSource
	parser *ansi.Parser
	buf    []byte
}

// TerminalOption configures a Terminal.
type TerminalOption func(*terminalConfig)

type terminalConfig struct {
	parserOpts []ansi.Option
}

// WithEscapeTimeout overrides how long a lone ESC may sit unresolved
// before it is reported as a bare Escape keystroke.
func WithEscapeTimeout(d time.Duration) TerminalOption {
	return func(c *terminalConfig) {
		c.parserOpts = append(c.parserOpts, ansi.WithEscapeTimeout(d))
	}
}

// withParserClock injects a clock into the parser. Tests use it to
// cross the escape timeout without sleeping.
func withParserClock(now func() time.Time) TerminalOption {
	return func(c *terminalConfig) {
		c.parserOpts = append(c.parserOpts, ansi.WithClock(now))
	}
}

// NewTerminal returns a terminal adapter reading from src. The source
// is expected to deliver raw-mode bytes; see OpenTTY.
func NewTerminal(src ByteSource, opts ...TerminalOption) *Terminal {
	var cfg terminalConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Terminal{
		src:    src,
		parser: ansi.NewParser(cfg.parserOpts...),
		buf:    make([]byte, readBufSize),
	}
}

// Poll reads whatever bytes are available, runs them through the
// parser, resolves any pending bare Escape, and returns the normalized
// batch. A poll with nothing ready returns nil.
func (t *Terminal) Poll() []event.Event {
	var batch []event.Event

	if rs, ok := t.src.(ResizeSource); ok {
		if w, h, ok := rs.PendingResize(); ok {
			batch = append(batch, event.ResizeEvent{Width: w, Height: h})
		}
	}

	n, err := t.src.ReadAvailable(t.buf)
	if n > 0 {
		batch = append(batch, t.parser.Feed(t.buf[:n])...)
	} else {
		// No new bytes this frame: give the parser a chance to flush a
		// pending bare Escape.
		batch = append(batch, t.parser.Tick()...)
	}
	_ = err // a failing source simply stops producing; input is never fatal

	return event.Normalize(batch)
}

// Close closes the byte source.
func (t *Terminal) Close() error {
	return t.src.Close()
}
