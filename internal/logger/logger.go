// Package logger builds the zerolog logger used for diagnostics.
// Other packages depend on this package instead of importing zerolog directly.
package logger

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the diagnostic logger type, aliased to zerolog.Logger.
type Logger = zerolog.Logger

// Event is an alias for zerolog.Event to allow building log entries without importing zerolog.
type Event = zerolog.Event

// Options configures New.
type Options struct {
	Level   string // debug, info, warn, error, disabled (default: warn)
	Format  string // console or json (default: console)
	NoColor bool
}

// New returns a logger writing to w.
// An unknown level falls back to warn; an unknown format falls back to console.
func New(w io.Writer, opts Options) Logger {
	var output io.Writer = w
	if !strings.EqualFold(opts.Format, "json") {
		output = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    opts.NoColor,
			TimeFormat: time.TimeOnly,
		}
	}

	return zerolog.New(output).Level(ParseLevel(opts.Level)).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return zerolog.Nop()
}

// ParseLevel maps a config level name to a zerolog level, defaulting to warn.
func ParseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.WarnLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return lvl
}

// HTTPEvent starts an info entry for a served request.
func HTTPEvent(l *Logger, method, path string, status int, duration time.Duration) *Event {
	return l.Info().
		Str("event_category", "http").
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("duration", duration)
}

// PanicEvent starts an error entry for a recovered panic.
func PanicEvent(l *Logger, recovered any, stack string) *Event {
	return l.Error().
		Str("event_category", "panic").
		Interface("error", recovered).
		Str("stack", stack)
}
