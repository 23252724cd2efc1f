// internal/logger/logger.go
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

var (
	mu            sync.RWMutex
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Init installs a logger writing to output with the given settings. Until
// Init is called all output is discarded.
func Init(cfg Config, output io.Writer) {
	if output == nil {
		output = io.Discard
	}
	level := cfg.Level()
	opts := slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.SourceKey:
				if src, ok := a.Value.Any().(*slog.Source); ok && src != nil {
					src.File = filepath.Base(src.File)
				}
			case slog.TimeKey:
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}

	handler := newFilteringHandler(slog.NewTextHandler(output, &opts), cfg)

	mu.Lock()
	defaultLogger = slog.New(handler)
	mu.Unlock()

	Infof("logger initialized at level %s", level)
}

// OpenOutput opens the log destination named by path. "" and "-" mean
// stderr, which the caller must not close.
func OpenOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stderr}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", path, err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// Get returns the configured slog logger.
func Get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// logAtLevel builds a record with the caller of the public wrapper as its
// source so package and file filters see the right location.
func logAtLevel(level slog.Level, tag string, format string, args ...interface{}) {
	l := Get()
	if !l.Enabled(context.Background(), level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // skip Callers, logAtLevel, wrapper

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	_ = l.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message.
func Debugf(format string, args ...interface{}) { logAtLevel(slog.LevelDebug, "", format, args...) }

// Infof logs an info message.
func Infof(format string, args ...interface{}) { logAtLevel(slog.LevelInfo, "", format, args...) }

// Warnf logs a warning.
func Warnf(format string, args ...interface{}) { logAtLevel(slog.LevelWarn, "", format, args...) }

// Errorf logs an error.
func Errorf(format string, args ...interface{}) { logAtLevel(slog.LevelError, "", format, args...) }

// DebugTagf logs a debug message carrying a filter tag.
func DebugTagf(tag, format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, tag, format, args...)
}

// InfoTagf logs an info message carrying a filter tag.
func InfoTagf(tag, format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, tag, format, args...)
}

// Fatalf logs an error and exits the process.
func Fatalf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, "", format, args...)
	os.Exit(1)
}
