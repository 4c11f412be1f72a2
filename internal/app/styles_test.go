package app

import (
	"testing"
	"time"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		at   time.Time
		want string
	}{
		{time.Time{}, ""},
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-2 * 24 * time.Hour), "2d ago"},
		{now.Add(-30 * 24 * time.Hour), "2026-07-27"},
	}
	for _, tc := range cases {
		if got := relativeTime(tc.at, now); got != tc.want {
			t.Errorf("relativeTime(%v) = %q, want %q", tc.at, got, tc.want)
		}
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := truncateToWidth("hello", 10); got != "hello" {
		t.Fatalf("got %q", got)
	}
	if got := truncateToWidth("hello world", 5); got != "hell…" {
		t.Fatalf("got %q", got)
	}
	if got := truncateToWidth("hello", 0); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestPadToWidth(t *testing.T) {
	if got := padToWidth("ab", 5); got != "ab   " {
		t.Fatalf("got %q", got)
	}
	if got := padToWidth("abcdef", 3); got != "abcdef" {
		t.Fatalf("got %q", got)
	}
}
