package logging

import "time"

// Generic field constructors.

func String(key, value string) Field { return Field{Key: key, Value: value} }

func Int(key string, value int) Field { return Field{Key: key, Value: value} }

func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

func Any(key string, value any) Field { return Field{Key: key, Value: value} }

// Duration renders the value through time.Duration.String so log lines
// stay readable ("250ms" rather than a nanosecond count).
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Helpers for the keys the simulation service logs most often.

func Component(name string) Field { return String("component", name) }

func RunID(id string) Field { return String("run_id", id) }

func Day(day float64) Field { return Float64("day", day) }

func Nodes(n int) Field { return Int("nodes", n) }

func Count(n int) Field { return Int("count", n) }

func Path(p string) Field { return String("path", p) }

func Latency(d time.Duration) Field { return Duration("latency", d) }
