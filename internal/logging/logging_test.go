package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		hasError bool
	}{
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{"info", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"invalid", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			level, err := ParseLevel(test.input)
			if test.hasError && err == nil {
				t.Error("expected error, got nil")
			}
			if !test.hasError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !test.hasError && level != test.expected {
				t.Errorf("expected %v, got %v", test.expected, level)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) did not fail")
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
	}
	for _, test := range tests {
		if got := LevelString(test.level); got != test.expected {
			t.Errorf("LevelString(%v) = %q, want %q", test.level, got, test.expected)
		}
	}
}

// newBufferLogger builds a Logger writing to an in-memory buffer,
// bypassing setupWriters.
func newBufferLogger(t *testing.T, format Format) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer

	cfg := DefaultConfig()
	cfg.Format = format
	cfg.Level = LevelDebug

	opts := &slog.HandlerOptions{
		Level: cfg.Level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if shouldRedact(a.Key) {
				a.Value = slog.StringValue("[REDACTED]")
			}
			return a
		},
	}
	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(&buf, opts)
	} else {
		handler = slog.NewTextHandler(&buf, opts)
	}
	return &Logger{Logger: slog.New(handler), config: cfg}, &buf
}

func TestJSONFormat(t *testing.T) {
	l, buf := newBufferLogger(t, FormatJSON)
	l.Info("hook started", "backend", "fake")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "hook started" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["backend"] != "fake" {
		t.Errorf("backend = %v", entry["backend"])
	}
}

func TestRedactsCapturedContent(t *testing.T) {
	l, buf := newBufferLogger(t, FormatText)
	l.Debug("key event", "key_char", "s", "key_code", 31)

	out := buf.String()
	if strings.Contains(out, "key_char=s") {
		t.Error("captured character leaked into the log")
	}
	if !strings.Contains(out, "[REDACTED]") {
		t.Error("captured character not redacted")
	}
	if !strings.Contains(out, "key_code=31") {
		t.Error("event metadata should not be redacted")
	}
}

func TestWithComponent(t *testing.T) {
	l, buf := newBufferLogger(t, FormatText)
	l.WithComponent("store").Info("opened")

	if !strings.Contains(buf.String(), "component=store") {
		t.Errorf("component attribute missing: %s", buf.String())
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hookwatch.log")

	cfg := DefaultConfig()
	cfg.Output = "file"
	cfg.FilePath = path

	l, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info("written to file")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log line missing from file: %s", data)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LevelWarn})
	l := &Logger{Logger: slog.New(handler), config: DefaultConfig()}

	l.Debug("hidden")
	l.Info("hidden too")
	l.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("sub-threshold entries were written")
	}
	if !strings.Contains(out, "visible") {
		t.Error("warn entry missing")
	}
}
