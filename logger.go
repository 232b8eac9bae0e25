package featex

// Logger defines methods for structured logging.
//
// Compatible with slog, zap.SugaredLogger and other structured loggers.
// All methods accept key-value pairs for structured fields.
type Logger interface {
	// Debug logs a message at DebugLevel.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at InfoLevel.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at WarnLevel.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at ErrorLevel.
	Error(msg string, keysAndValues ...any)
}

// nopLogger drops everything.  It is the default when no logger is set.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
