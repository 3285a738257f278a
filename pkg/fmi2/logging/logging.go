package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/fmiwrap/fmiwrap-go/internal/native"
)

// Logger defines the subset of slog functionality used by the FMI wrapper.
// The interface is intentionally small so applications can provide their own
// implementation for testing.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New returns a Logger backed by the provided slog.Logger. Passing nil binds to
// slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

// Discard returns a Logger that drops every record.
func Discard() Logger {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

// Attribute keys attached to unit messages.
const (
	KeyInstance = "instance"
	KeyCategory = "category"
	KeyStatus   = "status"
)

// Sink returns a log callback that forwards unit messages to l. The message
// text becomes the record message; instance and category become attributes.
//
//	OK              -> Info
//	Warning/Discard -> Warn
//	Error/Fatal     -> Error
//	Pending         -> Debug
func Sink(l Logger) native.LogFunc {
	return func(instanceName string, status native.Status, category, message string) {
		ctx := context.Background()
		args := []any{KeyInstance, instanceName, KeyCategory, category, KeyStatus, status.String()}
		switch status {
		case native.StatusOK:
			l.Info(ctx, message, args...)
		case native.StatusWarning, native.StatusDiscard:
			l.Warn(ctx, message, args...)
		case native.StatusError, native.StatusFatal:
			l.Error(ctx, message, args...)
		default:
			l.Debug(ctx, message, args...)
		}
	}
}

// Reporter returns an error callback that logs wrapper-local failures raised
// while the unit was calling back.
func Reporter(l Logger) func(error) {
	return func(err error) {
		l.Error(context.Background(), "fmi2 callback failed", "error", err)
	}
}
