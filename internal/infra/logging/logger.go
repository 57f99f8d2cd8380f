// Package logging builds the slog logger used for diagnostics.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// DebugEnv is the environment variable that forces debug output.
const DebugEnv = "DEBUG"

// New returns a text logger writing to w at the level held by level.
func New(w io.Writer, level *slog.LevelVar) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
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

// ResolveLevel returns the effective level: any non-empty debugEnv value
// forces debug, otherwise the configured level applies.
func ResolveLevel(debugEnv, configured string) slog.Level {
	if debugEnv != "" {
		return slog.LevelDebug
	}
	return ParseLevel(configured)
}
