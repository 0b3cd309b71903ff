package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldAlgorithm   = "algorithm"
	FieldSimulations = "simulations"
	FieldMonths      = "months"
	FieldFormat      = "format"
	FieldFile        = "file"
	FieldDuration    = "duration_ms"
	FieldError       = "error"
	FieldStatusCode  = "status_code"
	FieldPath        = "path"
	FieldMethod      = "method"
)

// Components defines standard component names
const (
	ComponentCLI    = "cli"
	ComponentConfig = "config"
	ComponentOutput = "output"
	ComponentHTTP   = "http"
	ComponentEngine = "engine"
)

// Logger wraps slog.Logger with a fixed component attribute
type Logger struct {
	*slog.Logger
	base      *slog.Logger
	component string
}

// Config holds logger configuration
type Config struct {
	Level     slog.Level
	Component string
	Output    io.Writer
	JSON      bool
}

// DefaultConfig logs text at info level to stderr so stdout stays free for reports
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelInfo,
		Component: ComponentCLI,
		Output:    os.Stderr,
	}
}

// New creates a new logger with the given configuration
func New(config Config) *Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: config.Level}

	var handler slog.Handler
	if config.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	component := config.Component
	if component == "" {
		component = ComponentCLI
	}
	base := slog.New(handler)
	return &Logger{
		Logger:    base.With(FieldComponent, component),
		base:      base,
		component: component,
	}
}

// Discard returns a logger that drops everything (tests, library use)
func Discard() *Logger {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &Logger{
		Logger:    base,
		base:      base,
		component: ComponentCLI,
	}
}

// WithComponent returns a new logger with a specific component name
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.base.With(FieldComponent, component),
		base:      l.base,
		component: component,
	}
}

// WithOperation tags every record, including those of derived component loggers,
// with the operation being performed.
func (l *Logger) WithOperation(operation string) *Logger {
	base := l.base.With(FieldOperation, operation)
	return &Logger{
		Logger:    base.With(FieldComponent, l.component),
		base:      base,
		component: l.component,
	}
}

// Component returns the logger's component name
func (l *Logger) Component() string {
	return l.component
}

// ParseLevel accepts debug, info, warn/warning and error (case-insensitive)
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Debugf adapts the logger to printf-style consumers such as the simulation engine.
func (l *Logger) Debugf(format string, args ...any) {
	l.Debug(fmt.Sprintf(format, args...))
}
