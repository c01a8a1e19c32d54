package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/storyforge/runebook/internal/config"
	"github.com/storyforge/runebook/internal/dispatch"
	"github.com/storyforge/runebook/internal/input"
	"github.com/storyforge/runebook/internal/input/event"
	"github.com/storyforge/runebook/internal/script"
)

// DefaultFrameInterval paces the poll loop at roughly 60 frames per
// second.
const DefaultFrameInterval = 16 * time.Millisecond

// Application wires the input facade, the dispatcher, and the optional
// script engine into a frame loop. One frame polls the backend once,
// walks the batch through the handler chain, and then invokes the frame
// callback so a view can redraw.
type Application struct {
	cfg    config.Config
	logger *Logger
	in     *input.Input
	disp   *dispatch.Dispatcher
	engine *script.Engine
	frame  time.Duration

	onFrame func()

	running  atomic.Bool
	quitOnce sync.Once
	quit     chan struct{}
}

// Option configures an Application.
type Option func(*Application)

// WithLogger replaces the default logger.
func WithLogger(l *Logger) Option {
	return func(app *Application) {
		app.logger = l
	}
}

// WithFrameInterval overrides the frame pacing.
func WithFrameInterval(d time.Duration) Option {
	return func(app *Application) {
		if d > 0 {
			app.frame = d
		}
	}
}

// WithScript attaches a document script engine. The application owns it
// from then on and closes it on shutdown.
func WithScript(e *script.Engine) Option {
	return func(app *Application) {
		app.engine = e
	}
}

// WithFrameFunc sets a callback invoked at the end of every frame,
// after dispatch. Views hang their redraw here.
func WithFrameFunc(f func()) Option {
	return func(app *Application) {
		app.onFrame = f
	}
}

// New builds an application around an input facade. The dispatcher
// starts with two built-in subscriptions: the script engine (if any) at
// normal priority and the Ctrl+Q quit handler at low priority, so a
// document script may intercept Ctrl+Q by consuming it.
func New(cfg config.Config, in *input.Input, opts ...Option) *Application {
	app := &Application{
		cfg:   cfg,
		in:    in,
		frame: DefaultFrameInterval,
		quit:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.logger == nil {
		app.logger = NewLogger(LoggerConfig{
			Level:  ParseLogLevel(cfg.Log.Level),
			Prefix: "runebook",
		})
	}

	app.disp = dispatch.New(dispatch.WithPanicHandler(func(id string, ev event.Event, r any) {
		app.logger.WithComponent("dispatch").Error("handler %s panicked on %s: %v", id, ev, r)
	}))

	if app.engine != nil {
		app.disp.Subscribe(app.engine)
	}
	app.disp.SubscribeFunc(app.quitHandler, dispatch.WithPriority(dispatch.PriorityLow))

	return app
}

// Dispatcher exposes the handler chain so callers can register their
// own handlers before Run.
func (app *Application) Dispatcher() *dispatch.Dispatcher {
	return app.disp
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Quit asks the frame loop to stop. Safe to call from any goroutine and
// more than once.
func (app *Application) Quit() {
	app.quitOnce.Do(func() { close(app.quit) })
}

// quitHandler consumes Ctrl+Q presses.
func (app *Application) quitHandler(ev event.Event) bool {
	key, ok := ev.(event.KeyEvent)
	if !ok {
		return false
	}
	if key.Code == event.KeyFromRune('q') && key.Mods.HasCtrl() && key.Action == event.ActionPress {
		app.logger.Info("quit requested")
		app.Quit()
		return true
	}
	return false
}

// ApplyConfig applies the reloadable parts of a new configuration. The
// backend choice and escape timeout are fixed at construction; only the
// log level takes effect live.
func (app *Application) ApplyConfig(cfg config.Config) {
	app.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	app.cfg = cfg
}

// Run drives the frame loop until Quit, context cancellation, or a
// handler-requested stop. A normal quit returns nil.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.logger.Info("engine started (backend=%s)", app.cfg.Input.Backend)

	ticker := time.NewTicker(app.frame)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-app.quit:
			return nil
		case <-ticker.C:
			batch := app.in.Poll()
			if len(batch) > 0 {
				app.disp.DispatchBatch(batch)
			}
			if app.onFrame != nil {
				app.onFrame()
			}
		}
	}
}

// Close releases the application's resources: the script engine and the
// input backend (restoring the terminal where the backend owns one).
func (app *Application) Close() error {
	var errs []error
	if app.engine != nil {
		errs = append(errs, app.engine.Close())
	}
	if app.in != nil {
		errs = append(errs, app.in.Close())
	}
	return errors.Join(errs...)
}
