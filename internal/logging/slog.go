// Package logging adapts log/slog to the featex Logger interface.
package logging

import (
	"log/slog"
	"os"

	"github.com/astrolab/featex"
)

// SlogLogger implements featex.Logger on a slog.Logger.
type SlogLogger struct {
	logger *slog.Logger
}

var _ featex.Logger = (*SlogLogger)(nil)

// NewSlog wraps an existing slog.Logger.
func NewSlog(logger *slog.Logger) *SlogLogger {
	return &SlogLogger{logger: logger}
}

// NewText returns a logger writing text lines to stderr at the given
// level.
func NewText(level slog.Level) *SlogLogger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &SlogLogger{logger: slog.New(h)}
}

func (l *SlogLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *SlogLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *SlogLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn(msg, keysAndValues...)
}

func (l *SlogLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
}
