package dispatch

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/storyforge/runebook/internal/input/event"
)

// Handler consumes input events. HandleInput returns true when the
// event was consumed and should not reach lower-priority handlers.
type Handler interface {
	HandleInput(ev event.Event) bool
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ev event.Event) bool

// HandleInput calls f.
func (f HandlerFunc) HandleInput(ev event.Event) bool { return f(ev) }

// Priority determines handler execution order. Lower values execute
// first.
type Priority int

// Standard priorities. Subscribers may use any value in between.
const (
	PriorityHigh   Priority = -100
	PriorityNormal Priority = 0
	PriorityLow    Priority = 100
)

// PanicHandler is called when a handler panics during dispatch.
type PanicHandler func(subscriptionID string, ev event.Event, recovered any)

// subscription is one registered handler.
type subscription struct {
	id       string
	priority Priority
	seq      uint64
	handler  Handler
}

// Dispatcher routes events through the registered handler chain.
// Subscribe, Unsubscribe, and Dispatch are safe for concurrent use.
type Dispatcher struct {
	mu      sync.RWMutex
	subs    []*subscription
	nextSeq uint64
	onPanic PanicHandler
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithPanicHandler sets the callback invoked when a handler panics.
func WithPanicHandler(h PanicHandler) Option {
	return func(d *Dispatcher) {
		d.onPanic = h
	}
}

// New creates an empty dispatcher.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SubscribeOption configures a subscription.
type SubscribeOption func(*subscription)

// WithPriority sets the subscription priority.
func WithPriority(p Priority) SubscribeOption {
	return func(s *subscription) {
		s.priority = p
	}
}

// Subscribe registers a handler and returns its subscription id. Equal
// priorities execute in registration order.
func (d *Dispatcher) Subscribe(h Handler, opts ...SubscribeOption) string {
	sub := &subscription{
		id:       uuid.NewString(),
		priority: PriorityNormal,
		handler:  h,
	}
	for _, opt := range opts {
		opt(sub)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	sub.seq = d.nextSeq
	d.nextSeq++
	d.subs = append(d.subs, sub)
	sort.SliceStable(d.subs, func(i, j int) bool {
		if d.subs[i].priority != d.subs[j].priority {
			return d.subs[i].priority < d.subs[j].priority
		}
		return d.subs[i].seq < d.subs[j].seq
	})
	return sub.id
}

// SubscribeFunc registers a plain function handler.
func (d *Dispatcher) SubscribeFunc(f func(ev event.Event) bool, opts ...SubscribeOption) string {
	return d.Subscribe(HandlerFunc(f), opts...)
}

// Unsubscribe removes a subscription by id. It reports whether the id
// was registered.
func (d *Dispatcher) Unsubscribe(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, sub := range d.subs {
		if sub.id == id {
			d.subs = append(d.subs[:i], d.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered handlers.
func (d *Dispatcher) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.subs)
}

// Dispatch walks one event through the handler chain and reports
// whether any handler consumed it.
func (d *Dispatcher) Dispatch(ev event.Event) bool {
	d.mu.RLock()
	subs := make([]*subscription, len(d.subs))
	copy(subs, d.subs)
	d.mu.RUnlock()

	for _, sub := range subs {
		if d.invoke(sub, ev) {
			return true
		}
	}
	return false
}

// DispatchBatch dispatches one frame's events in order and returns how
// many were consumed.
func (d *Dispatcher) DispatchBatch(batch []event.Event) int {
	consumed := 0
	for _, ev := range batch {
		if d.Dispatch(ev) {
			consumed++
		}
	}
	return consumed
}

// invoke runs one handler with panic recovery. A panicking handler is
// treated as not having consumed the event.
func (d *Dispatcher) invoke(sub *subscription, ev event.Event) (consumed bool) {
	defer func() {
		if r := recover(); r != nil {
			consumed = false
			if d.onPanic != nil {
				d.onPanic(sub.id, ev, r)
			}
		}
	}()
	return sub.handler.HandleInput(ev)
}
