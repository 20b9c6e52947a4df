// Package logger wires log/slog to the LoggingConfig and carries request-scoped loggers in context.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"postgate/internal/config"
)

type ctxKey struct{}

// L is the process-wide logger. Init replaces it.
var (
	L      = slog.Default()
	logKey = ctxKey{}
)

func Init(level, format string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// New initializes the global logger from cfg and returns it.
func New(cfg *config.Config) *slog.Logger {
	Init(cfg.Logging.Level, cfg.Logging.Format)
	return L
}

func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(logKey).(*slog.Logger); ok {
		return l
	}
	return L
}

// FromContextOr is FromContext with a caller-chosen fallback.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if l, ok := ctx.Value(logKey).(*slog.Logger); ok {
		return l
	}
	return fallback
}

func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, logKey, l)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
