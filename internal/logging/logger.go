package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bnema/actionitems/internal/config"
)

// NewLogger builds a slog logger from cfg and installs it as the default.
// Format "json" emits JSON lines; anything else emits text with source info.
// A nil writer means os.Stderr.
func NewLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	logger := newLogger(w, cfg)
	slog.SetDefault(logger)

	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
