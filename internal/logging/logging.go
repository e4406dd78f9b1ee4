package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup returns a logger writing to stderr. format "text" gives a
// human-friendly console writer; anything else emits JSON lines.
// verbose lowers the level to debug.
func Setup(format string, verbose bool) zerolog.Logger {
	return New(os.Stderr, format, verbose)
}

// New is Setup with an explicit destination.
func New(w io.Writer, format string, verbose bool) zerolog.Logger {
	if format == "text" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
