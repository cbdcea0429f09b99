// Package logger provides structured logging for the winpass CLI. Generated
// passwords are never logged; only lengths, modes and category counts are.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger.
type Logger struct {
	zlog zerolog.Logger
}

// Config holds logger configuration
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string

	// Output is where logs are written (default: os.Stderr)
	Output io.Writer

	// Pretty enables human-readable console output
	Pretty bool

	// TimeFormat for timestamps (default: RFC3339)
	TimeFormat string
}

// DefaultConfig returns default logger configuration. Diagnostics go to
// stderr so generated passwords on stdout stay pipeable.
func DefaultConfig() *Config {
	return &Config{
		Level:      "warn",
		Output:     os.Stderr,
		Pretty:     true,
		TimeFormat: time.RFC3339,
	}
}

// New creates a new logger with the given configuration
func New(cfg *Config) *Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: cfg.TimeFormat,
		}
	}

	zlog := zerolog.New(output).With().Timestamp().Logger()

	return &Logger{zlog: zlog}
}

// parseLevel converts string level to zerolog.Level
func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Event represents a log event
type Event struct {
	zevent *zerolog.Event
}

// Str adds a string field to the event
func (e *Event) Str(key, val string) *Event {
	e.zevent.Str(key, val)
	return e
}

// Int adds an int field to the event
func (e *Event) Int(key string, val int) *Event {
	e.zevent.Int(key, val)
	return e
}

// Bool adds a boolean field to the event
func (e *Event) Bool(key string, val bool) *Event {
	e.zevent.Bool(key, val)
	return e
}

// Err adds an error field to the event
func (e *Event) Err(err error) *Event {
	e.zevent.AnErr("error", err)
	return e
}

// Msg completes the event with a message
func (e *Event) Msg(msg string) {
	e.zevent.Msg(msg)
}

// Debug returns a debug event
func (l *Logger) Debug() *Event {
	return &Event{zevent: l.zlog.Debug()}
}

// Info returns an info event
func (l *Logger) Info() *Event {
	return &Event{zevent: l.zlog.Info()}
}

// Warn returns a warn event
func (l *Logger) Warn() *Event {
	return &Event{zevent: l.zlog.Warn()}
}

// Error returns an error event
func (l *Logger) Error() *Event {
	return &Event{zevent: l.zlog.Error()}
}
