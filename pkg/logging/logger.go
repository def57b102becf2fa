package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// NewJSONLogger returns a JSONLogger writing to w at the given level.
func NewJSONLogger(w io.Writer, level Level) *JSONLogger {
	return &JSONLogger{writer: w, level: level}
}

func (l *JSONLogger) Debug(msg string, fields ...Field) { l.emit(DebugLevel, msg, fields) }
func (l *JSONLogger) Info(msg string, fields ...Field)  { l.emit(InfoLevel, msg, fields) }
func (l *JSONLogger) Warn(msg string, fields ...Field)  { l.emit(WarnLevel, msg, fields) }
func (l *JSONLogger) Error(msg string, fields ...Field) { l.emit(ErrorLevel, msg, fields) }

func (l *JSONLogger) emit(level Level, msg string, fields []Field) {
	if level < l.level {
		return
	}

	entry := LogEntry{
		Time:    time.Now().Format(time.RFC3339Nano),
		Level:   level.String(),
		Message: msg,
	}

	// Call-site fields shadow preset fields on key collision. The
	// fields key is omitted entirely when nothing was attached.
	if n := len(l.preset) + len(fields); n > 0 {
		merged := make(map[string]any, n)
		for _, f := range l.preset {
			merged[f.Key] = f.Value
		}
		for _, f := range fields {
			merged[f.Key] = f.Value
		}
		entry.Fields = merged
	}

	line, err := json.Marshal(entry)
	if err != nil {
		l.mu.Lock()
		fmt.Fprintf(l.writer, "[ERROR] Failed to marshal log entry: %v\n", err)
		l.mu.Unlock()
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.writer.Write(line)
	l.writer.Write([]byte("\n"))
}

// With returns a child logger carrying the given fields on every entry.
// The child shares the parent's writer but not its mutex, so the two
// must not target the same non-concurrent-safe writer from different
// goroutines.
func (l *JSONLogger) With(fields ...Field) Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	preset := make([]Field, 0, len(l.preset)+len(fields))
	preset = append(preset, l.preset...)
	preset = append(preset, fields...)

	return &JSONLogger{writer: l.writer, level: l.level, preset: preset}
}

func (l *JSONLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *JSONLogger) GetLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

var (
	defaultLogger Logger
	defaultOnce   sync.Once
)

// DefaultLogger returns the process-wide logger. It writes JSON to
// stdout; the LOG_LEVEL environment variable selects the level, with
// INFO as the default.
func DefaultLogger() Logger {
	defaultOnce.Do(func() {
		level := InfoLevel
		if s := os.Getenv("LOG_LEVEL"); s != "" {
			level = ParseLevel(s)
		}
		defaultLogger = NewJSONLogger(os.Stdout, level)
	})
	return defaultLogger
}

// SetDefaultLogger replaces the process-wide logger. Intended for tests
// that need to capture output.
func SetDefaultLogger(logger Logger) {
	defaultOnce.Do(func() {})
	defaultLogger = logger
}

// Package-level helpers that delegate to the default logger.

func Debug(msg string, fields ...Field) { DefaultLogger().Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { DefaultLogger().Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { DefaultLogger().Warn(msg, fields...) }

// ErrorLog logs at error level through the default logger. The name
// leaves Error free for the field constructor.
func ErrorLog(msg string, fields ...Field) { DefaultLogger().Error(msg, fields...) }

// With returns a child of the default logger with the given fields
// pre-set.
func With(fields ...Field) Logger {
	return DefaultLogger().With(fields...)
}
