package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromPathMissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadFromPath(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DaemonAddress() != defaultDaemonAddress {
		t.Fatalf("address = %q", cfg.DaemonAddress())
	}
	if cfg.LogLevel() != "info" {
		t.Fatalf("level = %q", cfg.LogLevel())
	}
}

func TestLoadFromPathParsesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[daemon]\naddress = \"127.0.0.1:9900\"\n\n[logging]\nlevel = \"debug\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := loadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DaemonAddress() != "127.0.0.1:9900" {
		t.Fatalf("address = %q", cfg.DaemonAddress())
	}
	if cfg.LogLevel() != "debug" {
		t.Fatalf("level = %q", cfg.LogLevel())
	}
}

func TestLoadFromPathPartialTOMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"warn\"\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := loadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DaemonAddress() != defaultDaemonAddress {
		t.Fatalf("address = %q", cfg.DaemonAddress())
	}
	if cfg.LogLevel() != "warn" {
		t.Fatalf("level = %q", cfg.LogLevel())
	}
}

func TestLoadFromPathInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not = = toml"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := loadFromPath(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestDaemonAddressNormalization(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", defaultDaemonAddress},
		{"   ", defaultDaemonAddress},
		{"127.0.0.1:9900", "127.0.0.1:9900"},
		{"http://127.0.0.1:9900", "127.0.0.1:9900"},
		{"http://127.0.0.1:9900/", "127.0.0.1:9900"},
		{"http://", defaultDaemonAddress},
	}
	for _, tc := range cases {
		cfg := Config{Daemon: DaemonConfig{Address: tc.raw}}
		if got := cfg.DaemonAddress(); got != tc.want {
			t.Errorf("DaemonAddress(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestDaemonBaseURL(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.DaemonBaseURL(); got != "http://"+defaultDaemonAddress {
		t.Fatalf("base url = %q", got)
	}
}
