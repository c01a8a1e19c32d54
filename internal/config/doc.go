// Package config loads the engine's TOML configuration: which input
// backend to run, the escape disambiguation timeout, mouse reporting,
// the document script path, and the log level. A missing file yields
// the defaults; RUNEBOOK_* environment variables override file values.
//
// Watch provides hot reload over fsnotify so a running engine picks up
// edits to its config file.
package config
