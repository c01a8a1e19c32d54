package ansi

import (
	"time"

	"github.com/storyforge/runebook/internal/input/event"
)

// DefaultEscapeTimeout is how long a lone ESC byte may sit unresolved
// before it is flushed as a bare Escape keystroke. Terminal emulators
// transmit multi-byte sequences in well under this, while a deliberate
// Escape press still feels instant.
const DefaultEscapeTimeout = 50 * time.Millisecond

// maxParams bounds the CSI parameter list. Sequences carrying more
// parameters than this have their excess silently ignored.
const maxParams = 16

type state uint8

const (
	stateNormal state = iota
	stateEscape
	stateSS3
	stateCSILeader
	stateCSIArgs
	stateCSIIntermed
)

// param is one CSI parameter slot. An absent parameter is distinguishable
// from an explicit 0, and a colon separator marks the slot as having
// sub-parameters following it.
type param struct {
	value int
	set   bool
	sub   bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithEscapeTimeout overrides the bare-Escape disambiguation timeout.
func WithEscapeTimeout(d time.Duration) Option {
	return func(p *Parser) {
		p.timeout = d
	}
}

// WithClock replaces the parser's time source. Tests use this to step
// past the escape timeout without sleeping.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		p.now = now
	}
}

// Parser owns all state for one terminal session's byte stream. It is
// created once per session and must not be shared across goroutines;
// its owner feeds it from a single poll loop.
type Parser struct {
	state state

	// CSI accumulation
	leader   []byte
	intermed []byte
	params   [maxParams]param
	cur      int

	// UTF-8 sequence split across reads
	partial []byte
	need    int

	// Bare-Escape disambiguation
	escAlt  bool
	escAt   time.Time
	timeout time.Duration
	now     func() time.Time
}

// NewParser returns a parser in its initial state.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		timeout: DefaultEscapeTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Feed consumes one read's worth of bytes and returns the events they
// complete. Incomplete trailing state (a pending escape, a split UTF-8
// sequence, a CSI sequence still collecting bytes) is retained for the
// next call.
func (p *Parser) Feed(data []byte) []event.Event {
	var out []event.Event
	var text []byte

	flushText := func() {
		if len(text) > 0 {
			out = append(out, event.TextEvent{Text: string(text)})
			text = nil
		}
	}

	i := 0

	// Resume a UTF-8 sequence that was split across reads.
	if p.need > 0 {
		for p.need > 0 && i < len(data) {
			b := data[i]
			if b&0xC0 != 0x80 {
				// Not a continuation byte: the stored lead was a
				// malformed single unit. Drop it and rescan from here.
				p.partial = p.partial[:0]
				p.need = 0
				break
			}
			p.partial = append(p.partial, b)
			p.need--
			i++
		}
		if p.need > 0 {
			return out // read exhausted mid-sequence, keep waiting
		}
		text = append(text, p.partial...)
		p.partial = p.partial[:0]
	}

	for i < len(data) {
		b := data[i]

		switch p.state {
		case stateNormal:
			switch {
			case b == 0x1B:
				flushText()
				p.state = stateEscape
				p.escAlt = false
				i++
			case b == 0x9B: // single-byte C1 CSI
				flushText()
				p.enterCSI()
				i++
			case b < 0x20 || b == 0x7F:
				flushText()
				if ev, ok := c0Event(b, event.ModNone); ok {
					out = append(out, ev)
				}
				i++
			default:
				i = p.scanText(data, i, &text)
			}

		case stateEscape:
			if p.stepEscape(b, &out) {
				i++
			}

		case stateSS3:
			if key := ss3Key(b); key != event.KeyNone {
				out = append(out, event.KeyEvent{Code: key, Action: event.ActionPress})
			}
			p.state = stateNormal
			i++

		case stateCSILeader:
			if b >= 0x3C && b <= 0x3F {
				p.leader = append(p.leader, b)
				i++
			} else {
				p.state = stateCSIArgs
			}

		case stateCSIArgs:
			switch {
			case b >= '0' && b <= '9':
				p.params[p.cur].value = p.params[p.cur].value*10 + int(b-'0')
				p.params[p.cur].set = true
				i++
			case b == ';':
				p.nextParam()
				i++
			case b == ':':
				p.params[p.cur].sub = true
				p.nextParam()
				i++
			default:
				p.state = stateCSIIntermed
			}

		case stateCSIIntermed:
			switch {
			case b >= 0x20 && b <= 0x2F:
				p.intermed = append(p.intermed, b)
			case b >= 0x40 && b <= 0x7E:
				if ev, ok := decodeCSI(p.leader, p.params[:p.paramCount()], p.intermed, b); ok {
					out = append(out, ev)
				}
				p.state = stateNormal
			default:
				// Malformed sequence: abort silently, no event.
				p.state = stateNormal
			}
			i++
		}
	}

	flushText()

	if p.state == stateEscape && len(data) > 0 {
		p.escAt = p.now()
	}
	return out
}

// Tick resolves a pending bare Escape. The owner calls it when a poll
// produced no new bytes; if the stream has sat in the escape state for
// the configured timeout, the ESC is flushed as a keystroke.
func (p *Parser) Tick() []event.Event {
	if p.state != stateEscape {
		return nil
	}
	if p.now().Sub(p.escAt) < p.timeout {
		return nil
	}
	mods := event.ModNone
	if p.escAlt {
		mods = event.ModAlt
	}
	p.state = stateNormal
	p.escAlt = false
	return []event.Event{event.KeyEvent{Code: event.KeyEscape, Mods: mods, Action: event.ActionPress}}
}

// stepEscape handles one byte in the escape state. It reports whether
// the byte was consumed; an unconsumed byte is reprocessed in the state
// the step switched to.
func (p *Parser) stepEscape(b byte, out *[]event.Event) bool {
	switch {
	case b == 0x1B:
		// ESC ESC: the pending escape becomes an Alt prefix for
		// whatever resolves this one.
		p.escAlt = true
		return true

	case b == 0x7F:
		*out = append(*out, event.KeyEvent{Code: event.KeyBackspace, Mods: event.ModAlt, Action: event.ActionPress})
		p.leaveEscape()
		return true

	case b < 0x20:
		// A control byte cannot continue an escape sequence. The ESC
		// was a real keystroke; flush it and reprocess the control
		// byte normally.
		mods := event.ModNone
		if p.escAlt {
			mods = event.ModAlt
		}
		*out = append(*out, event.KeyEvent{Code: event.KeyEscape, Mods: mods, Action: event.ActionPress})
		p.leaveEscape()
		return false

	case b >= 0x40 && b <= 0x5F:
		// 7-bit encoding of a C1 control.
		switch b + 0x40 {
		case 0x9B: // CSI
			p.enterCSI()
		case 0x8F: // SS3
			p.state = stateSS3
			p.escAlt = false
		default:
			p.leaveEscape()
		}
		return true

	case b >= 0x20 && b <= 0x2F:
		p.intermed = append(p.intermed, b)
		return true

	case b >= 0x30 && b <= 0x7E:
		if len(p.intermed) == 0 {
			// Alt+key combination.
			*out = append(*out, event.KeyEvent{Code: event.KeyCode(b), Mods: event.ModAlt, Action: event.ActionPress})
		}
		// With intermediates this is a complete escape sequence the
		// engine has no interpretation for; discard it.
		p.leaveEscape()
		return true

	default:
		p.leaveEscape()
		return true
	}
}

// scanText consumes a run of printable/UTF-8 bytes starting at i,
// appending the decoded bytes to text, and returns the new index. The
// run ends at a control byte, an invalid byte, an incomplete trailing
// sequence, or end of buffer.
func (p *Parser) scanText(data []byte, i int, text *[]byte) int {
	for i < len(data) {
		b := data[i]
		if b == 0x1B || b == 0x9B || b < 0x20 || b == 0x7F {
			return i
		}

		n := utf8SeqLen(b)
		switch {
		case n == 0:
			// A continuation byte in lead position, or an invalid lead
			// (0xF8+): a single malformed unit. Skip it and keep going.
			i++

		case n == 1:
			*text = append(*text, b)
			i++

		case i+n <= len(data):
			valid := true
			for j := 1; j < n; j++ {
				if data[i+j]&0xC0 != 0x80 {
					valid = false
					break
				}
			}
			if valid {
				*text = append(*text, data[i:i+n]...)
				i += n
			} else {
				// Abandon the multi-byte assumption: the lead byte is a
				// malformed single unit, and scanning resumes at the
				// offending byte.
				i++
			}

		default:
			// The buffer ends mid-sequence. Stash the bytes read so far
			// and the remaining expected count; the next Feed resumes.
			p.partial = append(p.partial[:0], data[i:]...)
			p.need = n - (len(data) - i)
			return len(data)
		}
	}
	return i
}

// utf8SeqLen returns the sequence length implied by a lead byte, or 0
// when the byte cannot lead a sequence.
func utf8SeqLen(b byte) int {
	switch {
	case b&0x80 == 0x00:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}

func (p *Parser) enterCSI() {
	p.state = stateCSILeader
	p.escAlt = false
	p.leader = p.leader[:0]
	p.intermed = p.intermed[:0]
	p.params = [maxParams]param{}
	p.cur = 0
}

func (p *Parser) leaveEscape() {
	p.state = stateNormal
	p.escAlt = false
	p.intermed = p.intermed[:0]
}

func (p *Parser) nextParam() {
	if p.cur < maxParams-1 {
		p.cur++
	} else {
		// Overflow: reuse the last slot so excess parameters are
		// ignored rather than corrupting earlier ones.
		p.params[p.cur] = param{}
	}
}

// paramCount returns how many parameter slots the sequence used. A
// sequence with no digits and no separators has zero parameters; a
// separator with no digits yields "missing" slots, which decode to
// their defaults.
func (p *Parser) paramCount() int {
	if p.cur == 0 && !p.params[0].set && !p.params[0].sub {
		return 0
	}
	return p.cur + 1
}
