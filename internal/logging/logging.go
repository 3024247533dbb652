// Package logging builds the slog loggers used by the command line tool.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Build returns a logger writing to w. format is "json" or "text"; unknown
// levels fall back to info.
func Build(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}
	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ErrAttr wraps err as the conventional "error" attribute.
func ErrAttr(err error) slog.Attr {
	return slog.Any("error", err)
}
