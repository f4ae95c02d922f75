package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/flashcards/internal/config"
)

const serviceName = "flashcards"

// NewLogger builds the server logger on stderr and installs it as the slog
// default. JSON output carries a service attribute for log shipping; text
// output adds source locations for local runs.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)).With(slog.String("service", serviceName))
	}
	opts.AddSource = true
	return slog.New(slog.NewTextHandler(w, opts))
}

// parseLevel accepts slog level names with optional offsets ("warn", "INFO+2").
// Anything else means info.
func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}
