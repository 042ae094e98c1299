// Package logging configures the process-wide slog logger. The TUI owns the
// terminal, so logs go to a file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Component names used with slog's "component" attribute.
const (
	FieldComponent = "component"

	ComponentApp      = "app"
	ComponentTUI      = "tui"
	ComponentSource   = "source"
	ComponentSession  = "session"
	ComponentPipeline = "pipeline"
)

// Config holds logger settings.
type Config struct {
	Level string // debug, info, warn, error
	Path  string // empty discards all output
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a text logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup opens the log file, installs the logger as slog's default and
// returns a func that closes the file.
func Setup(cfg Config) (*slog.Logger, func() error, error) {
	if cfg.Path == "" {
		logger := New(io.Discard, ParseLevel(cfg.Level))
		slog.SetDefault(logger)
		return logger, func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.Path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := New(f, ParseLevel(cfg.Level))
	slog.SetDefault(logger)
	return logger, f.Close, nil
}

// For returns the default logger tagged with a component name.
func For(component string) *slog.Logger {
	return slog.Default().With(FieldComponent, component)
}
