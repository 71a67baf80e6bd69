package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/textscanner/internal/config"
)

// NewLogger builds the process logger from cfg, writes to stderr so stdout
// stays free for rendered lookups, and installs it as the slog default.
//
// Format "json" is meant for the relay in production; "text" adds source
// positions for local runs. Level accepts debug, info, warn or warning, and
// error in any case; anything else means info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	text := !strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}

	if text {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
