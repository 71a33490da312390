package logger

import (
	"context"

	"github.com/sirupsen/logrus"
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

// WithContext creates a logger tagged with the acting user from the request
// context, if present
func WithContext(ctx context.Context) *Logger {
	l := New()
	if user, ok := ctx.Value("user").(string); ok && user != "" {
		l.Entry = l.Entry.WithField("user", user)
	}
	if reqID, ok := ctx.Value("request_id").(string); ok && reqID != "" {
		l.Entry = l.Entry.WithField("request_id", reqID)
	}
	return l
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithField(key, value)}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithFields(fields)}
}
