// logging.go: Pluggable logging system with automatic adapter detection
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package goanalysis

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// loggerContextKey is a custom type for context keys to avoid collisions
type loggerContextKey string

const (
	// Context keys for logger storage
	loggerKey loggerContextKey = "logger"
)

// Logger defines the pluggable logging interface for the go-analysis library.
//
// Resolution of analysis extensions is silent by nature: a missing
// implementation degrades a field to passthrough or zero terms. The Logger
// is how that degradation becomes diagnosable, so every registry and
// delegating factory accepts one.
//
// Example implementations:
//   - ZapAdapter: Wraps *zap.Logger
//   - NoOpLogger: Silent logger for testing
//   - TestLogger: Captures messages for assertions
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, args ...any)

	// Info logs an info message with optional key-value pairs
	Info(msg string, args ...any)

	// Warn logs a warning message with optional key-value pairs
	Warn(msg string, args ...any)

	// Error logs an error message with optional key-value pairs
	Error(msg string, args ...any)

	// With returns a new logger with persistent context key-value pairs
	With(args ...any) Logger
}

// NewLogger creates a Logger from supported logger types.
//
// Supported types:
//   - Logger interface: Used directly
//   - *zap.Logger: Wrapped in a ZapAdapter
//   - nil: Returns NoOpLogger for silent operation
//   - Unsupported types: Panic with descriptive message
func NewLogger(logger any) Logger {
	switch l := logger.(type) {
	case Logger:
		return l
	case *zap.Logger:
		return NewZapAdapter(l)
	case nil:
		return NewNoOpLogger()
	default:
		panic("unsupported logger type: expected Logger interface, *zap.Logger or nil")
	}
}

// ZapAdapter adapts a *zap.Logger to the Logger interface using the sugared
// key-value API.
type ZapAdapter struct {
	sugar *zap.SugaredLogger
}

// NewZapAdapter wraps a zap logger. A nil logger yields a no-op zap logger.
// Caller annotations skip the adapter frame.
func NewZapAdapter(logger *zap.Logger) *ZapAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapAdapter{sugar: logger.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

// NewZapLogger builds a zap-backed Logger for the given level name
// ("debug", "info", "warn", "error"). Development mode enables the console
// encoder.
func NewZapLogger(level string, development bool) (*ZapAdapter, error) {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, NewConfigValidationError("invalid log level "+level, err)
	}
	cfg.Level = lvl

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return NewZapAdapter(logger), nil
}

// Debug implements Logger interface
func (z *ZapAdapter) Debug(msg string, args ...any) { z.sugar.Debugw(msg, args...) }

// Info implements Logger interface
func (z *ZapAdapter) Info(msg string, args ...any) { z.sugar.Infow(msg, args...) }

// Warn implements Logger interface
func (z *ZapAdapter) Warn(msg string, args ...any) { z.sugar.Warnw(msg, args...) }

// Error implements Logger interface
func (z *ZapAdapter) Error(msg string, args ...any) { z.sugar.Errorw(msg, args...) }

// With implements Logger interface
func (z *ZapAdapter) With(args ...any) Logger {
	return &ZapAdapter{sugar: z.sugar.With(args...)}
}

// Sync flushes buffered log entries.
func (z *ZapAdapter) Sync() error { return z.sugar.Sync() }

// NoOpLogger provides a silent logger implementation for testing and minimal setups.
type NoOpLogger struct{}

// NewNoOpLogger creates a new no-operation logger.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// Debug implements Logger interface (no-op)
func (n *NoOpLogger) Debug(msg string, args ...any) {}

// Info implements Logger interface (no-op)
func (n *NoOpLogger) Info(msg string, args ...any) {}

// Warn implements Logger interface (no-op)
func (n *NoOpLogger) Warn(msg string, args ...any) {}

// Error implements Logger interface (no-op)
func (n *NoOpLogger) Error(msg string, args ...any) {}

// With implements Logger interface (no-op)
func (n *NoOpLogger) With(args ...any) Logger {
	return n
}

// TestLogger for testing - captures log messages.
//
// Loggers derived through With share the parent's message buffer, so
// messages logged by components that received a derived logger are visible
// on the root TestLogger.
type TestLogger struct {
	mu       *sync.RWMutex
	messages *[]TestLogMessage
	fields   []any
}

// TestLogMessage represents a captured log message for testing.
type TestLogMessage struct {
	Level   string
	Message string
	Args    []any
}

// NewTestLogger creates a new test logger.
func NewTestLogger() *TestLogger {
	messages := make([]TestLogMessage, 0)
	return &TestLogger{
		mu:       &sync.RWMutex{},
		messages: &messages,
	}
}

func (t *TestLogger) record(level, msg string, args []any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	all := make([]any, 0, len(t.fields)+len(args))
	all = append(all, t.fields...)
	all = append(all, args...)
	*t.messages = append(*t.messages, TestLogMessage{
		Level:   level,
		Message: msg,
		Args:    all,
	})
}

// Debug implements Logger interface (captures message)
func (t *TestLogger) Debug(msg string, args ...any) { t.record("DEBUG", msg, args) }

// Info implements Logger interface (captures message)
func (t *TestLogger) Info(msg string, args ...any) { t.record("INFO", msg, args) }

// Warn implements Logger interface (captures message)
func (t *TestLogger) Warn(msg string, args ...any) { t.record("WARN", msg, args) }

// Error implements Logger interface (captures message)
func (t *TestLogger) Error(msg string, args ...any) { t.record("ERROR", msg, args) }

// With implements Logger interface (returns a logger sharing the buffer)
func (t *TestLogger) With(args ...any) Logger {
	fields := make([]any, 0, len(t.fields)+len(args))
	fields = append(fields, t.fields...)
	fields = append(fields, args...)
	return &TestLogger{mu: t.mu, messages: t.messages, fields: fields}
}

// Messages returns a snapshot of the captured messages.
func (t *TestLogger) Messages() []TestLogMessage {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]TestLogMessage, len(*t.messages))
	copy(out, *t.messages)
	return out
}

// HasMessage checks if the logger captured a message with the given level and text.
func (t *TestLogger) HasMessage(level, message string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, msg := range *t.messages {
		if msg.Level == level && msg.Message == message {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (t *TestLogger) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	*t.messages = (*t.messages)[:0]
}

// DefaultLogger creates a reasonable default logger for the library.
func DefaultLogger() Logger {
	return NewNoOpLogger()
}

// LoggerFromContext extracts a logger from context if available.
func LoggerFromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerKey).(Logger); ok {
		return logger
	}

	return DefaultLogger()
}

// ContextWithLogger adds a logger to the context.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
