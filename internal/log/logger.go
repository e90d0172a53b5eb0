package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Component names used in the "component" attribute.
const (
	ComponentApp     = "app"
	ComponentStore   = "store"
	ComponentExpense = "expense"
	ComponentBudget  = "budget"
	ComponentConfig  = "config"
)

// Logger wraps slog.Logger and tags every record with a component.
type Logger struct {
	*slog.Logger
	base      *slog.Logger
	component string
}

// New creates a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *Logger {
	base := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return &Logger{
		Logger:    base.With("component", ComponentApp),
		base:      base,
		component: ComponentApp,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, slog.LevelError)
}

// WithComponent returns a logger tagged with a different component name.
// The new tag replaces the old one.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.base.With("component", component),
		base:      l.base,
		component: component,
	}
}

// Component returns the logger's component name.
func (l *Logger) Component() string {
	return l.component
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
