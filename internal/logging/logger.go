package logging

import (
	"io"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// Initialize sets up the global logger writing to out.
// Standard output carries the generated schedule, so callers pass stderr here.
func Initialize(out io.Writer, pretty bool) {
	// Set global time field format
	zerolog.TimeFieldFormat = time.RFC3339
	// Set stack trace marshaler
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	// Human readable output on a terminal, JSON lines otherwise
	output := out
	if pretty {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05",
		}
	}

	log.Logger = zerolog.New(output).
		With().
		Timestamp().
		Caller().
		Logger()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// GetLogger returns a logger with the component field set
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// ValidLevels lists the level names accepted by SetLogLevel
var ValidLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}

// IsValidLevel reports whether level is one of ValidLevels
func IsValidLevel(level string) bool {
	return slices.Contains(ValidLevels, level)
}

// SetLogLevel sets the global log level
func SetLogLevel(level string) {
	switch level {
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel) // Default to InfoLevel if invalid
	}
}
