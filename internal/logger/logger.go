package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hance08/pesa/internal/config"
	"github.com/rs/zerolog"
)

// ContextKey is the type for context keys used by the logger
type ContextKey string

const (
	// LoggerKey is the context key for the logger instance
	LoggerKey ContextKey = "logger"
)

// New builds the run logger. Without a log file it writes human-readable
// lines to stderr; with one it appends JSON lines to that file. The returned
// close func must be called when the run ends.
func New(cfg config.LogConfig) (zerolog.Logger, func() error, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.Nop(), nil, fmt.Errorf("invalid log level %q", cfg.Level)
	}

	if cfg.File == "" {
		output := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
		return zerolog.New(output).Level(level).With().Timestamp().Logger(), func() error { return nil }, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return NewWithWriter(f).Level(level), f.Close, nil
}

// NewWithWriter creates a new structured logger with a custom writer
func NewWithWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// WithContext adds the logger to the context
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// FromContext retrieves the logger from the context, or a disabled logger if none was set.
func FromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(LoggerKey).(zerolog.Logger); ok {
		return logger
	}
	return zerolog.Nop()
}
