// Package logging provides the leveled diagnostic sink used across the game.
// Loggers are constructed explicitly in main and injected; there is no
// package-level singleton.
package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Level orders diagnostic severity. Messages below the configured
// threshold are suppressed.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the fixed-width level tag used in output lines.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config string to a Level. Unrecognized values fall
// back to INFO.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes leveled, timestamped lines to a single writer.
// Safe for concurrent use; both game loops log through one instance.
type Logger struct {
	mu        sync.Mutex
	out       io.Writer
	threshold Level
}

// New creates a logger writing to out, suppressing messages below threshold.
func New(out io.Writer, threshold Level) *Logger {
	return &Logger{out: out, threshold: threshold}
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{out: io.Discard, threshold: LevelError + 1}
}

// SetThreshold changes the suppression threshold at runtime.
func (l *Logger) SetThreshold(threshold Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.threshold = threshold
}

// Enabled reports whether a message at the given level would be written.
func (l *Logger) Enabled(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.threshold
}

func (l *Logger) log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.threshold {
		return
	}
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(l.out, "%s %-5s %s\n", ts, level, fmt.Sprintf(format, args...))
}

func (l *Logger) Trace(format string, args ...any) { l.log(LevelTrace, format, args...) }
func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }
