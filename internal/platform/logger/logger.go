// Package logger builds the process-wide structured logger.
package logger

import (
	"log/slog"
	"os"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/platform/config"
)

// New returns a slog.Logger configured from LogConfig. Unknown levels
// and formats fall back to info/JSON.
func New(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
