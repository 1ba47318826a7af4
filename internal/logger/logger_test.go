package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestTextLoggerWritesAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := Text(&buf, slog.LevelDebug)

	log.With("op", "sin").Info("dispatched", "device", "CPU")

	out := buf.String()
	for _, want := range []string{"dispatched", "op=sin", "device=CPU"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := Text(&buf, slog.LevelWarn)

	log.Debug("hidden")
	log.Info("hidden too")
	log.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output should not contain suppressed levels: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("output should contain warn message: %q", out)
	}
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelInfo)

	log.Info("hello", "n", 3)

	out := buf.String()
	if !strings.Contains(out, `"msg":"hello"`) || !strings.Contains(out, `"n":3`) {
		t.Errorf("unexpected JSON output: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel should reject unknown names")
	}
}

func TestContextRoundTrip(t *testing.T) {
	log := Discard()
	ctx := WithContext(context.Background(), log)
	if got := FromContext(ctx); got != Logger(log) {
		t.Error("FromContext should return the stored logger")
	}
	if got := FromContext(context.Background()); got == nil {
		t.Error("FromContext without a stored logger should fall back to Default")
	}
}
