package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/myfrench-backend/internal/config"
)

// NewLogger builds the process logger from cfg and installs it as the slog
// default. Format "json" is the production shape; anything else gets a text
// handler with source locations, which is what development runs want.
// Output goes to os.Stderr so log lines never mix with payload output.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg))
	slog.SetDefault(logger)
	return logger
}

// newHandler picks the slog handler for cfg. Split out so tests can aim it
// at a buffer.
func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: parseLevel(cfg.Level),
		})
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: true,
	})
}

// parseLevel maps a configured level name onto a slog.Level. Unknown or
// empty names mean info.
func parseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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
