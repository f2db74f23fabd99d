// Package logger configures the application's logging.
//
// It builds the process-wide zerolog logger (pretty console output in the
// local environment, JSON elsewhere) and the dedicated logger that the
// pgx tracelog integration uses for SQL statement tracing.
package logger

import (
	"os"
	"strings"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// New creates the process logger for the given environment.
//
// In "local" the logger writes human-readable console output; in every
// other environment it writes JSON to stderr. The level defaults to info
// and can be lowered to debug via logLevel.
func New(env, logLevel string) zerolog.Logger {
	level := parseLevel(logLevel)

	var logger zerolog.Logger
	if env == "local" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(level).With().Timestamp().Logger()
}

// NewPgxLogger creates the logger handed to the pgx tracelog adapter. SQL
// tracing is chatty, so it gets its own logger tagged with a component
// field instead of sharing the request loggers.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel converts a zerolog level into the tracelog level used
// by the pgx query tracer.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	default:
		return tracelog.LogLevelError
	}
}

func parseLevel(logLevel string) zerolog.Level {
	switch strings.ToLower(logLevel) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
