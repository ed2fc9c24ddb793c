// Package ftlog builds the zerolog loggers used across the app.
// The terminal belongs to the UI, so logs go to a file or nowhere.
package ftlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var osOpenFile = os.OpenFile

func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel falls back to info for empty or unknown names.
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// Open appends to the log file at path. An empty path disables logging.
func Open(path string, level zerolog.Level) (logger zerolog.Logger, closeLog func() error, err error) {
	if path == "" {
		return zerolog.Nop(), func() error { return nil }, nil
	}
	f, err := osOpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), func() error { return nil }, err
	}
	return New(f, level), f.Close, nil
}

func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
