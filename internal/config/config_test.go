package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load() = %+v, want defaults", cfg)
	}
	if cfg.EscapeTimeout() != 50*time.Millisecond {
		t.Fatalf("EscapeTimeout() = %v, want 50ms", cfg.EscapeTimeout())
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "runebook.toml", `
[input]
backend = "screen"
escape_timeout_ms = 25
mouse = false

[script]
path = "handlers.lua"

[log]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Input.Backend != BackendScreen {
		t.Errorf("Backend = %q, want screen", cfg.Input.Backend)
	}
	if cfg.EscapeTimeout() != 25*time.Millisecond {
		t.Errorf("EscapeTimeout() = %v, want 25ms", cfg.EscapeTimeout())
	}
	if cfg.Input.Mouse {
		t.Error("Mouse = true, want false")
	}
	if cfg.Script.Path != "handlers.lua" {
		t.Errorf("Script.Path = %q", cfg.Script.Path)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "runebook.toml", `
[log]
level = "warn"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Input.Backend != BackendTerminal {
		t.Errorf("Backend = %q, want terminal default", cfg.Input.Backend)
	}
	if cfg.Input.EscapeTimeoutMS != 50 {
		t.Errorf("EscapeTimeoutMS = %d, want 50", cfg.Input.EscapeTimeoutMS)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeFile(t, t.TempDir(), "runebook.toml", `
[input]
backend = "terminal"
escape_timeout_ms = 50
`)

	t.Setenv("RUNEBOOK_INPUT_BACKEND", "screen")
	t.Setenv("RUNEBOOK_INPUT_ESCAPE_TIMEOUT_MS", "10")
	t.Setenv("RUNEBOOK_INPUT_MOUSE", "false")
	t.Setenv("RUNEBOOK_LOG_LEVEL", "error")
	t.Setenv("RUNEBOOK_SCRIPT_PATH", "/tmp/doc.lua")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Input.Backend != BackendScreen {
		t.Errorf("Backend = %q, want env override", cfg.Input.Backend)
	}
	if cfg.Input.EscapeTimeoutMS != 10 {
		t.Errorf("EscapeTimeoutMS = %d, want 10", cfg.Input.EscapeTimeoutMS)
	}
	if cfg.Input.Mouse {
		t.Error("Mouse = true, want env override false")
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want error", cfg.Log.Level)
	}
	if cfg.Script.Path != "/tmp/doc.lua" {
		t.Errorf("Script.Path = %q", cfg.Script.Path)
	}
}

func TestLoadParseError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "runebook.toml", "not [valid toml")
	if _, err := Load(path); err == nil {
		t.Fatal("Load() of invalid TOML = nil error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"screen backend", func(c *Config) { c.Input.Backend = BackendScreen }, true},
		{"bad backend", func(c *Config) { c.Input.Backend = "serial" }, false},
		{"negative timeout", func(c *Config) { c.Input.EscapeTimeoutMS = -1 }, false},
		{"zero timeout", func(c *Config) { c.Input.EscapeTimeoutMS = 0 }, true},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("Validate() = nil, want error")
				}
				if !errors.Is(err, ErrInvalid) {
					t.Fatalf("Validate() = %v, want ErrInvalid", err)
				}
			}
		})
	}
}
