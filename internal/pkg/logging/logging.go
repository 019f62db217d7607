// Package logging wires the process-wide structured logger. All components
// receive a *slog.Logger from the composition root instead of using the
// default logger, which keeps log output JSON-formatted and testable.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// New creates a JSON slog logger writing to stdout. The level string is one of
// "debug", "info", "warn", "error"; anything else falls back to info.
func New(level string) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return slog.New(h)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
