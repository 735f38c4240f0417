package log

// Logger is a structured logger. Every logging method takes a message and a
// flat list of key-value pairs (e.g., "backend", name, "size", n).
type Logger interface {
	// Debug logs detail that is only useful while developing or diagnosing.
	Debug(msg string, keysAndValues ...any)
	// Info logs routine events.
	Info(msg string, keysAndValues ...any)
	// Warn logs unexpected situations the caller can continue from.
	Warn(msg string, keysAndValues ...any)
	// Error logs a failure of the current operation.
	Error(msg string, keysAndValues ...any)
	// Fatal logs an unrecoverable failure and may terminate the program.
	Fatal(msg string, keysAndValues ...any)
	// WithKV returns a logger that attaches key and value to every entry.
	WithKV(key string, value any) Logger
	// GetAllKV returns the key-value pairs attached with WithKV.
	GetAllKV() []any
	// WithName returns a logger whose name is extended with name.
	WithName(name string) Logger
	// Name returns the logger's dotted name.
	Name() string
	// AddCallerSkip returns a logger that skips extra frames when reporting
	// the caller. Implementations without caller support return themselves.
	AddCallerSkip(skip int) Logger
}

// Level represents the severity of a log entry.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)
