package logger

import (
	"io"
	"log/slog"
	"strings"
)

func New(level string, handler func(level slog.Level) slog.Handler) *slog.Logger {
	h := handler(getSlogLevel(level))
	return slog.New(h)
}

// CloudRun returns a handler factory writing Cloud Logging JSON lines to w.
func CloudRun(w io.Writer) func(level slog.Level) slog.Handler {
	return func(level slog.Level) slog.Handler {
		return NewCloudRunHandler(w, level)
	}
}

// ---- Helpers ----
func getSlogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
