// Package observability provides structured logging for the client.
package observability

import (
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger to provide component-scoped logging.
type Logger struct {
	*slog.Logger
}

// GlobalLogger is the default logger instance for the application.
var GlobalLogger *Logger

func init() {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	GlobalLogger = &Logger{Logger: slog.New(handler)}
}

// Init reconfigures the global logger with the given level
// ("debug", "info", "warn", "error"). Unknown levels fall back to info.
func Init(level string) {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: l,
	})
	GlobalLogger = &Logger{Logger: slog.New(handler)}
}

// Component returns a logger annotated with a component field.
func Component(name string) *Logger {
	return &Logger{Logger: GlobalLogger.With(slog.String("component", name))}
}
