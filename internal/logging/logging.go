// Package logging builds the zerolog loggers used by the command-line tools.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New creates a console logger writing to w at the given level.
// An unparsable level falls back to info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Verbosity maps a -v style flag to a level name.
func Verbosity(verbose bool) string {
	if verbose {
		return zerolog.LevelDebugValue
	}
	return zerolog.LevelInfoValue
}
