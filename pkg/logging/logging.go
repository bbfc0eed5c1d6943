// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup(os.Stderr, logging.ParseLevel("debug"))
//	closer, err := logging.SetupFile("/tmp/quicksplit.log", slog.LevelInfo)
//	logging.Discard()                        // the TUI owns the terminal
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (overrides the configured level)
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Setup installs a tint handler writing to w as the default logger.
func Setup(w io.Writer, level slog.Level) {
	slog.SetDefault(New(w, level, isTerminal(w)))
}

// SetupFile appends colorless logs to path. The returned closer must be
// closed on exit.
func SetupFile(path string, level slog.Level) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(New(f, level, false))
	return f, nil
}

// Discard drops all log output.
func Discard() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// New builds a tint-backed logger.
func New(w io.Writer, level slog.Level, color bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  level == slog.LevelDebug,
		NoColor:    !color,
	}))
}

// ParseLevel maps a level name to a slog level. LOG_LEVEL, when set, takes
// precedence over name. Unknown names mean INFO.
func ParseLevel(name string) slog.Level {
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		name = env
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
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

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
