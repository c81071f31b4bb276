package config

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger returns the application logger and installs it as the slog
// default. Production gets a JSON handler, everything else a text handler.
// LOG_LEVEL selects the minimum level (debug, info, warn, error; default info).
func NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevel()}

	var handler slog.Handler
	if os.Getenv("GO_ENV") == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func logLevel() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
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
