// Command runebook runs the input engine against a live terminal and
// echoes the canonical event stream, optionally routing events through
// a document's Lua handlers first.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/storyforge/runebook/internal/app"
	"github.com/storyforge/runebook/internal/config"
	"github.com/storyforge/runebook/internal/dispatch"
	"github.com/storyforge/runebook/internal/input"
	"github.com/storyforge/runebook/internal/input/backend"
	"github.com/storyforge/runebook/internal/input/event"
	"github.com/storyforge/runebook/internal/script"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  = flag.String("config", "runebook.toml", "path to the TOML config file")
		scriptPath  = flag.String("script", "", "Lua handler script (overrides config)")
		backendName = flag.String("backend", "", "input backend: terminal or screen (overrides config)")
		watch       = flag.Bool("watch", false, "hot-reload the config file")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *scriptPath != "" {
		cfg.Script.Path = *scriptPath
	}
	if *backendName != "" {
		cfg.Input.Backend = *backendName
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(cfg.Log.Level),
		Prefix: "runebook",
	})

	opts := []app.Option{app.WithLogger(logger)}

	var engine *script.Engine
	if cfg.Script.Path != "" {
		engine, err = script.New(script.WithErrorHandler(func(handler string, err error) {
			logger.WithComponent("script").Error("%s: %v", handler, err)
		}))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if err := engine.LoadFile(cfg.Script.Path); err != nil {
			engine.Close()
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		opts = append(opts, app.WithScript(engine))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var a *app.Application
	switch cfg.Input.Backend {
	case config.BackendScreen:
		sc, err := tcell.NewScreen()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if err := sc.Init(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer sc.Fini()
		if cfg.Input.Mouse {
			sc.EnableMouse()
		}

		view := newEchoView(sc)
		a = app.New(cfg, input.New(backend.NewScreen(sc)),
			append(opts, app.WithFrameFunc(view.draw))...)
		a.Dispatcher().Subscribe(view, dispatch.WithPriority(dispatch.PriorityHigh))

	case config.BackendTerminal:
		in, err := input.Open(os.Stdin, backend.WithEscapeTimeout(cfg.EscapeTimeout()))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		a = app.New(cfg, in, opts...)
		// Raw mode: lines need explicit carriage returns.
		a.Dispatcher().SubscribeFunc(func(ev event.Event) bool {
			fmt.Fprintf(os.Stdout, "%s\r\n", ev)
			return false
		}, dispatch.WithPriority(dispatch.PriorityHigh))

	default:
		fmt.Fprintf(os.Stderr, "unknown backend %q\n", cfg.Input.Backend)
		return 1
	}

	if *watch {
		w, err := config.Watch(*configPath, a.ApplyConfig,
			config.WithErrorHandler(func(err error) {
				logger.WithComponent("config").Error("reload: %v", err)
			}))
		if err != nil {
			logger.WithComponent("config").Warn("watch disabled: %v", err)
		} else {
			defer w.Close()
		}
	}

	runErr := a.Run(ctx)
	if err := a.Close(); err != nil {
		logger.Error("shutdown: %v", err)
	}

	switch {
	case runErr == nil:
		return 0
	case errors.Is(runErr, context.Canceled):
		// Interrupted; the terminal has been restored, exit quietly.
		return 0
	default:
		fmt.Fprintln(os.Stderr, runErr)
		return 1
	}
}
