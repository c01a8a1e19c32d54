package script

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/storyforge/runebook/internal/input/event"
)

// Handler global names a document script may define.
const (
	handlerKey       = "on_key"
	handlerText      = "on_text"
	handlerMouse     = "on_mouse"
	handlerMouseMove = "on_mouse_move"
	handlerResize    = "on_resize"
)

// ErrClosed is returned when a closed engine is used.
var ErrClosed = errors.New("script: engine closed")

// ErrorHandler is called when a Lua handler raises an error. The event
// is then treated as not consumed.
type ErrorHandler func(handler string, err error)

// Engine hosts one document's Lua handlers. It implements
// dispatch.Handler, so it plugs straight into the handler chain.
//
// The underlying Lua state is not goroutine-safe; the engine serializes
// all access with a mutex.
type Engine struct {
	mu      sync.Mutex
	state   *lua.LState
	closed  bool
	onError ErrorHandler
}

// Option configures an Engine.
type Option func(*Engine)

// WithErrorHandler sets the callback invoked when a Lua handler raises.
func WithErrorHandler(h ErrorHandler) Option {
	return func(e *Engine) {
		e.onError = h
	}
}

// New creates a sandboxed engine with no handlers loaded.
func New(opts ...Option) (*Engine, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			L.Close()
			return nil, fmt.Errorf("script: open %s: %w", lib.name, err)
		}
	}

	// Scripts may not load further code at runtime.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	e := &Engine{state: L}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Load executes a document's script block, registering whatever handler
// functions it defines. Loading again replaces handlers the new source
// redefines.
func (e *Engine) Load(source string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if err := e.state.DoString(source); err != nil {
		return fmt.Errorf("script: load: %w", err)
	}
	return nil
}

// LoadFile executes a script file.
func (e *Engine) LoadFile(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if err := e.state.DoFile(path); err != nil {
		return fmt.Errorf("script: load %s: %w", path, err)
	}
	return nil
}

// HandleInput routes one event to the matching Lua handler and reports
// whether the handler consumed it. Events without a defined handler are
// not consumed.
func (e *Engine) HandleInput(ev event.Event) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return false
	}

	var (
		name string
		arg  lua.LValue
	)
	switch ev := ev.(type) {
	case event.KeyEvent:
		name, arg = handlerKey, keyTable(e.state, ev)
	case event.TextEvent:
		name, arg = handlerText, textTable(e.state, ev)
	case event.MouseEvent:
		name, arg = handlerMouse, mouseTable(e.state, ev)
	case event.MouseMoveEvent:
		name, arg = handlerMouseMove, mouseMoveTable(e.state, ev)
	case event.ResizeEvent:
		name, arg = handlerResize, resizeTable(e.state, ev)
	default:
		return false
	}

	fn, ok := e.state.GetGlobal(name).(*lua.LFunction)
	if !ok {
		return false
	}

	if err := e.state.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, arg); err != nil {
		if e.onError != nil {
			e.onError(name, err)
		}
		return false
	}
	ret := e.state.Get(-1)
	e.state.Pop(1)
	return lua.LVAsBool(ret)
}

// Close releases the Lua state. The engine consumes nothing afterwards.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true
	e.state.Close()
	return nil
}
