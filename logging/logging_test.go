package logging

import (
	"strings"
	"testing"
)

func TestThresholdSuppression(t *testing.T) {
	var buf strings.Builder
	log := New(&buf, LevelWarn)

	log.Trace("trace msg")
	log.Debug("debug msg")
	log.Info("info msg")
	log.Warn("warn msg")
	log.Error("error msg")

	out := buf.String()
	for _, suppressed := range []string{"trace msg", "debug msg", "info msg"} {
		if strings.Contains(out, suppressed) {
			t.Errorf("message %q should have been suppressed below WARN", suppressed)
		}
	}
	for _, expected := range []string{"warn msg", "error msg"} {
		if !strings.Contains(out, expected) {
			t.Errorf("message %q missing from output", expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetThreshold(t *testing.T) {
	var buf strings.Builder
	log := New(&buf, LevelError)

	log.Info("before")
	log.SetThreshold(LevelInfo)
	log.Info("after")

	if strings.Contains(buf.String(), "before") {
		t.Error("message below threshold leaked")
	}
	if !strings.Contains(buf.String(), "after") {
		t.Error("message after threshold change missing")
	}
}

func TestNopDiscardsEverything(t *testing.T) {
	log := Nop()
	if log.Enabled(LevelError) {
		t.Error("nop logger should not enable any level")
	}
	// Must not panic.
	log.Error("dropped")
}
