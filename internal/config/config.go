package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Backend names accepted in [input].backend.
const (
	BackendTerminal = "terminal"
	BackendScreen   = "screen"
)

// ErrInvalid wraps all validation failures.
var ErrInvalid = errors.New("config: invalid")

// Config is the engine configuration.
type Config struct {
	Input  InputConfig  `toml:"input"`
	Script ScriptConfig `toml:"script"`
	Log    LogConfig    `toml:"log"`
}

// InputConfig selects and tunes the input backend.
type InputConfig struct {
	// Backend is "terminal" (raw byte pipeline) or "screen" (tcell).
	Backend string `toml:"backend"`

	// EscapeTimeoutMS is how long a lone ESC may sit unresolved before
	// it is reported as a bare Escape keystroke.
	EscapeTimeoutMS int `toml:"escape_timeout_ms"`

	// Mouse enables mouse reporting where the backend supports it.
	Mouse bool `toml:"mouse"`
}

// ScriptConfig locates the document's Lua handlers.
type ScriptConfig struct {
	// Path is the handler script file; empty disables scripting.
	Path string `toml:"path"`
}

// LogConfig controls engine logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Input: InputConfig{
			Backend:         BackendTerminal,
			EscapeTimeoutMS: 50,
			Mouse:           true,
		},
		Log: LogConfig{Level: "info"},
	}
}

// EscapeTimeout returns the escape timeout as a duration.
func (c Config) EscapeTimeout() time.Duration {
	return time.Duration(c.Input.EscapeTimeoutMS) * time.Millisecond
}

// Validate checks field values. All failures wrap ErrInvalid.
func (c Config) Validate() error {
	switch c.Input.Backend {
	case BackendTerminal, BackendScreen:
	default:
		return fmt.Errorf("%w: input.backend %q (want %s or %s)",
			ErrInvalid, c.Input.Backend, BackendTerminal, BackendScreen)
	}
	if c.Input.EscapeTimeoutMS < 0 {
		return fmt.Errorf("%w: input.escape_timeout_ms %d is negative",
			ErrInvalid, c.Input.EscapeTimeoutMS)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// Load reads path, applies environment overrides, and validates. A
// missing file is not an error; the defaults (plus overrides) apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults apply.
	default:
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides file values from RUNEBOOK_* variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("RUNEBOOK_INPUT_BACKEND"); v != "" {
		cfg.Input.Backend = v
	}
	if v := os.Getenv("RUNEBOOK_INPUT_ESCAPE_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.Input.EscapeTimeoutMS = ms
		}
	}
	if v := os.Getenv("RUNEBOOK_INPUT_MOUSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Input.Mouse = b
		}
	}
	if v := os.Getenv("RUNEBOOK_SCRIPT_PATH"); v != "" {
		cfg.Script.Path = v
	}
	if v := os.Getenv("RUNEBOOK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}
