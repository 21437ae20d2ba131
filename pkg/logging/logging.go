// Package logging provides structured logging for the viewbundle system
// using zerolog. Console output is used when writing to a terminal during
// development, JSON otherwise.
//
// Example usage:
//
//	log := logging.Default()
//	log.Info().Str("view", "checkout").Int("locales", 4).Msg("bundle written")
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// defaultLogger is the global logger instance.
	defaultLogger zerolog.Logger

	// Nop logger for discarding output.
	Nop = zerolog.Nop()
)

func init() {
	defaultLogger = New(os.Stderr, "auto")
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault sets the default global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger // Also update zerolog's global logger
}

// SetLevel parses and applies the global log level. Unknown levels fall
// back to info.
func SetLevel(level string) {
	zerolog.SetGlobalLevel(ParseLevel(level))
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// New creates a logger writing to w in the given format: "json", "console",
// or "auto" to pick console when w is a terminal.
func New(w io.Writer, format string) zerolog.Logger {
	switch format {
	case "console":
		w = consoleWriter(w)
	case "json":
		// leave w as-is
	default:
		if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			w = consoleWriter(w)
		}
	}

	return zerolog.New(w).
		Level(zerolog.GlobalLevel()).
		With().
		Timestamp().
		Logger()
}

func consoleWriter(w io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
}
