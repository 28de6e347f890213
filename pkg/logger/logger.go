// Package logger is a thin facade over one or more logging backends.
// Packages log through the package-level functions; main wires the
// backends once at startup via Init.
package logger

// Backend is a single logging destination.
type Backend interface {
	Debug(message string, keyvals ...any)
	Info(message string, keyvals ...any)
	Warn(message string, keyvals ...any)
	Error(message string, keyvals ...any)
	Fatal(message string, keyvals ...any)
}

var backends []Backend

// Init installs the logging backends. Calling any log function before Init
// is a silent no-op, which keeps library code usable from tests without
// log setup.
func Init(instances ...Backend) {
	backends = instances
}

// Debug logs at DEBUG level on every backend.
func Debug(message string, keyvals ...any) {
	for _, b := range backends {
		b.Debug(message, keyvals...)
	}
}

// Info logs at INFO level on every backend.
func Info(message string, keyvals ...any) {
	for _, b := range backends {
		b.Info(message, keyvals...)
	}
}

// Warn logs at WARN level on every backend.
func Warn(message string, keyvals ...any) {
	for _, b := range backends {
		b.Warn(message, keyvals...)
	}
}

// Error logs at ERROR level on every backend.
func Error(message string, keyvals ...any) {
	for _, b := range backends {
		b.Error(message, keyvals...)
	}
}

// Fatal logs at FATAL level on every backend; the backend is expected to
// terminate the process.
func Fatal(message string, keyvals ...any) {
	for _, b := range backends {
		b.Fatal(message, keyvals...)
	}
}
