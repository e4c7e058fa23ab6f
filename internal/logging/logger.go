// Package logging wraps zerolog with the small surface the CLI needs:
// a leveled, structured logger configured once at startup from
// internal/config and threaded through the command tree.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps a configured zerolog.Logger.
type Logger struct {
	zl zerolog.Logger
}

// Config holds logger configuration.
type Config struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string
	// Console, if true, uses zerolog's human-readable console writer
	// instead of JSON, for interactive terminal use.
	Console bool
	Output  io.Writer
}

// New creates a Logger from cfg.
func New(cfg Config) *Logger {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	var zl zerolog.Logger
	if cfg.Console {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339})
	} else {
		zl = zerolog.New(output)
	}

	zl = zl.With().Timestamp().Str("service", "lacuna").Logger()
	return &Logger{zl: zl}
}

// Default returns a Logger at info level, console format, for
// situations where no Config has been loaded yet.
func Default() *Logger {
	return New(Config{Level: "info", Console: true})
}

// Debug starts a debug-level event.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }

// Info starts an info-level event.
func (l *Logger) Info() *zerolog.Event { return l.zl.Info() }

// Warn starts a warn-level event.
func (l *Logger) Warn() *zerolog.Event { return l.zl.Warn() }

// Error starts an error-level event.
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
