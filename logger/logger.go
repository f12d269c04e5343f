package logger

import (
	"io"
	"log/slog"
	"os"
)

// Config holds logger settings
type Config struct {
	Level  slog.Level
	Format string // "text" or "json"
	Output io.Writer
}

// DefaultConfig logs warnings and errors as text on stderr.
// Stdout is reserved for matching lines.
func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelWarn,
		Format: "text",
		Output: os.Stderr,
	}
}

// New creates a logger and installs it as the default logger
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: cfg.Level,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	default: // "text"
		handler = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
