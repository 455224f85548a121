package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"pricebook/server/middleware"
)

var (
	// Logger is the process-wide structured logger.
	Logger *slog.Logger
)

func init() {
	ConfigureLogger("INFO")
}

// ConfigureLogger rebuilds the global logger at the given level and installs
// it as the slog default, so package-level slog calls share one handler.
func ConfigureLogger(level string) {
	opts := &slog.HandlerOptions{
		Level:     parseLogLevel(level),
		AddSource: true,
	}

	Logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
	slog.SetDefault(Logger)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogError logs an error with the request context.
func LogError(ctx context.Context, err error, msg string, attrs ...any) {
	reqID := middleware.GetRequestID(ctx)

	attrs = append(attrs, "error", err, "request_id", reqID)

	Logger.Error(msg, attrs...)
}

// LogErrorf logs an error with a formatted message.
func LogErrorf(ctx context.Context, err error, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	LogError(ctx, err, msg)
}

// LogWarn logs a warning.
func LogWarn(ctx context.Context, msg string, attrs ...any) {
	reqID := middleware.GetRequestID(ctx)
	attrs = append(attrs, "request_id", reqID)
	Logger.Warn(msg, attrs...)
}

// LogInfo logs an informational message.
func LogInfo(ctx context.Context, msg string, attrs ...any) {
	reqID := middleware.GetRequestID(ctx)
	attrs = append(attrs, "request_id", reqID)
	Logger.Info(msg, attrs...)
}

// LogDebug logs a debug message.
func LogDebug(ctx context.Context, msg string, attrs ...any) {
	reqID := middleware.GetRequestID(ctx)
	attrs = append(attrs, "request_id", reqID)
	Logger.Debug(msg, attrs...)
}

// LogDuration logs how long an operation took.
func LogDuration(ctx context.Context, operation string, duration time.Duration, attrs ...any) {
	reqID := middleware.GetRequestID(ctx)
	attrs = append(attrs, "request_id", reqID, "duration_ms", duration.Milliseconds())
	Logger.Info(operation+" completed", attrs...)
}
