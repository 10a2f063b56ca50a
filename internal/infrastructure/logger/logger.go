// Package logger builds the process-wide zerolog logger.
package logger

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// globalLogger starts as a console logger at info level so packages that log
// before New runs still produce readable output.
var globalLogger = consoleLogger().Level(zerolog.InfoLevel)

// GetLogger returns the shared logger instance. Packages that are not wired
// through cmd/server fall back to this.
func GetLogger() zerolog.Logger {
	return globalLogger
}

// New constructs the process logger from the configured level and format and
// installs it as the shared instance.
func New(level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Logger{}, err
	}

	var base zerolog.Logger
	switch strings.ToLower(format) {
	case "json":
		base = zerolog.New(os.Stdout).With().Timestamp().Logger()
	case "console":
		base = consoleLogger()
	default:
		return zerolog.Logger{}, errors.New("unsupported log format")
	}

	zerolog.SetGlobalLevel(lvl)
	globalLogger = base.Level(lvl)

	return globalLogger, nil
}

func consoleLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger()
}
