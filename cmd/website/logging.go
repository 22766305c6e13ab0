package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/adampresley/photogallery/cmd/website/internal/configuration"
)

func setupLogger(config *configuration.Config, version string) {
	level := parseLogLevel(config.LogLevel)

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}).WithAttrs([]slog.Attr{
		slog.String("app", appName),
		slog.String("version", version),
	})

	slog.SetDefault(slog.New(handler))
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "info":
		return slog.LevelInfo

	case "warn", "warning":
		return slog.LevelWarn

	case "error":
		return slog.LevelError

	default:
		return slog.LevelDebug
	}
}
