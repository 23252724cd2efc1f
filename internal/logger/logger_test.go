package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestConfigLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"err", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range tests {
		if got := (Config{LogLevel: tc.in}).Level(); got != tc.want {
			t.Errorf("Level(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "warn"}, &buf)

	Infof("quiet %d", 1)
	Warnf("loud %d", 2)

	out := buf.String()
	if strings.Contains(out, "quiet 1") {
		t.Errorf("info message logged at warn level:\n%s", out)
	}
	if !strings.Contains(out, "loud 2") {
		t.Errorf("warn message missing:\n%s", out)
	}
}

func TestTagFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledTags: []string{"Noisy"}}, &buf)

	DebugTagf("noisy", "dropped")
	DebugTagf("useful", "kept tagged")
	Debugf("kept plain")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("disabled tag was logged:\n%s", out)
	}
	for _, want := range []string{"kept tagged", "kept plain", "tag=useful"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEnabledTagsDropUntagged(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "debug", EnabledTags: []string{"indent"}}, &buf)

	Debugf("untagged")
	DebugTagf("indent", "tagged")

	out := buf.String()
	if strings.Contains(out, "untagged") {
		t.Errorf("untagged message passed an enabled-tags filter:\n%s", out)
	}
	if !strings.Contains(out, "tagged") {
		t.Errorf("tagged message missing:\n%s", out)
	}
}

func TestFileFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledFiles: []string{"logger_test.go"}}, &buf)

	Debugf("from the test file")

	if strings.Contains(buf.String(), "from the test file") {
		t.Errorf("disabled file was logged:\n%s", buf.String())
	}
}

func TestPackageFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "debug", EnabledPackages: []string{"logger"}}, &buf)

	Debugf("same package")

	if !strings.Contains(buf.String(), "same package") {
		t.Errorf("enabled package was dropped:\n%s", buf.String())
	}
}

func TestOpenOutputStderr(t *testing.T) {
	for _, p := range []string{"", "-"} {
		w, err := OpenOutput(p)
		if err != nil {
			t.Fatalf("OpenOutput(%q) error: %v", p, err)
		}
		if err := w.Close(); err != nil {
			t.Errorf("Close() error: %v", err)
		}
	}
}
