package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

func Component(name string) Field {
	return String("component", name)
}

// Stage names a step of the analysis pipeline.
func Stage(name string) Field {
	return String("stage", name)
}

func Symbol(sym string) Field {
	return String("symbol", sym)
}

func Sector(name string) Field {
	return String("sector", name)
}

func Seed(seed int64) Field {
	return Int64("seed", seed)
}

func RunID(id string) Field {
	return String("run_id", id)
}

// Metric records a computed metric value.
func Metric(name string, value float64) Field {
	return Float64(name, value)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}

func Path(p string) Field {
	return String("path", p)
}
