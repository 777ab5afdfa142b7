// Package logging builds the zerolog loggers used across the module.
// Library packages default to Nop and accept a logger through an option.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a logger writing JSON lines to w, tagged with component.
func New(w io.Writer, component string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(w).With().Timestamp().Str("component", component).Logger()
}

// NewConsole returns a human-readable logger for interactive runs.
func NewConsole(component string, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}
	return zerolog.New(out).Level(level).With().Timestamp().Str("component", component).Logger()
}

// Nop returns a disabled logger.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
