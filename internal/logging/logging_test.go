package logging

import (
	"strings"
	"testing"
	"time"
)

func TestLoggerWritesLogfmt(t *testing.T) {
	var buf strings.Builder
	logger := New(&buf, Info)

	logger.Info("server started", F("addr", "127.0.0.1:7707"), F("pid", 42))
	line := buf.String()
	if !strings.Contains(line, "level=info") {
		t.Fatalf("missing level: %q", line)
	}
	if !strings.Contains(line, `msg="server started"`) {
		t.Fatalf("missing quoted msg: %q", line)
	}
	if !strings.Contains(line, "addr=127.0.0.1:7707") {
		t.Fatalf("missing addr field: %q", line)
	}
	if !strings.Contains(line, "pid=42") {
		t.Fatalf("missing pid field: %q", line)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf strings.Builder
	logger := New(&buf, Warn)

	logger.Debug("hidden")
	logger.Info("hidden too")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}
	logger.Error("visible")
	if !strings.Contains(buf.String(), "msg=visible") {
		t.Fatalf("expected error output, got %q", buf.String())
	}
}

func TestWithFieldsCarry(t *testing.T) {
	var buf strings.Builder
	logger := New(&buf, Info).With(F("request_id", "abc123"))

	logger.Info("handled")
	if !strings.Contains(buf.String(), "request_id=abc123") {
		t.Fatalf("expected carried field, got %q", buf.String())
	}
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{"plain", "plain"},
		{"has space", `"has space"`},
		{"", `""`},
		{true, "true"},
		{42, "42"},
		{1500 * time.Millisecond, "1.5s"},
	}
	for _, tc := range cases {
		if got := formatValue(tc.in); got != tc.want {
			t.Errorf("formatValue(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		"DEBUG":   Debug,
		" warn ":  Warn,
		"warning": Warn,
		"error":   Error,
		"info":    Info,
		"":        Info,
		"bogus":   Info,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestNewRequestID(t *testing.T) {
	a := NewRequestID()
	b := NewRequestID()
	if a == "" || a == b {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", a, b)
	}
}
