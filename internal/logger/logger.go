package logger

import (
	"log/slog"
	"os"

	"github.com/michaels22/GestorTechPlay/internal/config"
)

// NewLogger builds the application logger from configuration. Output is JSON
// on stdout; an unknown level falls back to info. At debug level the source
// location is attached to every record.
func NewLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		level = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	})

	logger := slog.New(handler)
	if cfg.Application.Name != "" {
		logger = logger.With("service", cfg.Application.Name)
	}

	logger.Info("logger initialized", "level", level)

	return logger
}
