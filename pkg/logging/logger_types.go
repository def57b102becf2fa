package logging

import (
	"io"
	"strings"
	"sync"
)

// Level controls which entries a logger emits. Entries below the
// configured level are dropped before serialization.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name to a Level. Matching is case-insensitive
// and unrecognized names fall back to InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DebugLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Field is a single key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// Logger is the structured logging interface used across the simulation
// service. Field helpers in this package cover the common keys (run id,
// day, component, latency).
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a child logger whose entries carry the given fields
	// in addition to anything passed at the call site.
	With(fields ...Field) Logger

	SetLevel(level Level)
	GetLevel() Level
}

// LogEntry is the wire shape of one serialized log line.
type LogEntry struct {
	Time    string         `json:"time"`
	Level   string         `json:"level"`
	Message string         `json:"msg"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// JSONLogger writes one JSON object per entry. Safe for concurrent use;
// the mutex also keeps entries from interleaving on a shared writer.
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
	level  Level
	preset []Field
}
