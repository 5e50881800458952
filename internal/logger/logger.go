package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	userKey      contextKey = "user"
	requestIDKey contextKey = "request_id"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// ContextWithUser stores the authenticated user's email for later log lines
func ContextWithUser(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userKey, email)
}

// ContextWithRequestID stores the request id for later log lines
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithContext creates a logger with user and request information
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if ctx == nil {
		return logger
	}

	if user, ok := ctx.Value(userKey).(string); ok && user != "" {
		logger.Entry = logger.Entry.WithField("user", user)
	} else {
		logger.Entry = logger.Entry.WithField("user", "unknown")
	}

	if requestID, ok := ctx.Value(requestIDKey).(string); ok && requestID != "" {
		logger.Entry = logger.Entry.WithField("request_id", requestID)
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError adds an error field to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
