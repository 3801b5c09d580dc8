package core

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// InitLogger installs the default slog handler. Verbose switches to debug
// level and includes source locations.
func InitLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		AddSource:  verbose,
	})

	slog.SetDefault(slog.New(handler))
}

// WithTurn creates a logger carrying the turn id for correlation
func WithTurn(turnID string) *slog.Logger {
	return slog.Default().With("turn_id", turnID)
}

// WithTool creates a logger with tool execution context
func WithTool(logger *slog.Logger, toolName string) *slog.Logger {
	return logger.With("tool", toolName)
}

// LogDuration logs the duration of an operation
// Usage: defer LogDuration(logger, "operation_name", time.Now())
func LogDuration(logger *slog.Logger, operation string, start time.Time) {
	duration := time.Since(start)
	logger.Debug("operation complete",
		"operation", operation,
		"duration_ms", duration.Milliseconds(),
	)
}
