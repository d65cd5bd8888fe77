package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv blanks every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TERMSYS_CONFIG",
		"TERMSYS_BACKEND",
		"TERMSYS_LOG_LEVEL",
		"TERMSYS_LOG_FILE",
		"TERMSYS_RESIZE_POLL",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Backend != "auto" {
		t.Errorf("expected auto backend, got %q", cfg.Backend)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info level, got %q", cfg.LogLevel)
	}
	if cfg.ResizePollInterval != 100*time.Millisecond {
		t.Errorf("expected 100ms poll interval, got %v", cfg.ResizePollInterval)
	}
	if err := validate(cfg); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("missing file keeps defaults", func(t *testing.T) {
		clearEnv(t)
		cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Backend != "auto" {
			t.Errorf("expected default backend, got %q", cfg.Backend)
		}
	})

	t.Run("file values", func(t *testing.T) {
		clearEnv(t)
		path := writeConfig(t, "backend: syscall\nlog_level: debug\nlog_file: /tmp/termsys.log\nresize_poll_interval: 250ms\n")
		cfg, err := LoadFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Backend != "syscall" {
			t.Errorf("expected syscall backend, got %q", cfg.Backend)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("expected debug level, got %q", cfg.LogLevel)
		}
		if cfg.LogFile != "/tmp/termsys.log" {
			t.Errorf("unexpected log file %q", cfg.LogFile)
		}
		if cfg.ResizePollInterval != 250*time.Millisecond {
			t.Errorf("expected 250ms, got %v", cfg.ResizePollInterval)
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		clearEnv(t)
		path := writeConfig(t, "backend: syscall\nlog_level: debug\n")
		t.Setenv("TERMSYS_BACKEND", " Term ")
		t.Setenv("TERMSYS_LOG_LEVEL", "WARN")
		t.Setenv("TERMSYS_RESIZE_POLL", "1s")

		cfg, err := LoadFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Backend != "term" {
			t.Errorf("expected term backend, got %q", cfg.Backend)
		}
		if cfg.LogLevel != "warn" {
			t.Errorf("expected warn level, got %q", cfg.LogLevel)
		}
		if cfg.ResizePollInterval != time.Second {
			t.Errorf("expected 1s, got %v", cfg.ResizePollInterval)
		}
	})

	t.Run("file values are normalized", func(t *testing.T) {
		clearEnv(t)
		path := writeConfig(t, "backend: Term\nlog_level: ' DEBUG '\n")
		cfg, err := LoadFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Backend != "term" {
			t.Errorf("expected term backend, got %q", cfg.Backend)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("expected debug level, got %q", cfg.LogLevel)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		clearEnv(t)
		path := writeConfig(t, "backend: [unterminated\n")
		if _, err := LoadFile(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"unknown backend", map[string]string{"TERMSYS_BACKEND": "curses"}, "backend"},
		{"unknown level", map[string]string{"TERMSYS_LOG_LEVEL": "trace"}, "log_level"},
		{"bad duration", map[string]string{"TERMSYS_RESIZE_POLL": "soon"}, "TERMSYS_RESIZE_POLL"},
		{"zero interval", map[string]string{"TERMSYS_RESIZE_POLL": "0s"}, "resize_poll_interval"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadFile("")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGetConfigPath(t *testing.T) {
	clearEnv(t)

	t.Setenv("TERMSYS_CONFIG", "/explicit/config.yaml")
	if got := getConfigPath(); got != "/explicit/config.yaml" {
		t.Errorf("expected explicit path, got %q", got)
	}

	t.Setenv("TERMSYS_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := getConfigPath(); got != filepath.Join("/xdg", "termsys", "config.yaml") {
		t.Errorf("expected XDG path, got %q", got)
	}
}

func TestPlatform(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend = "syscall"
	p, err := cfg.Platform()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil {
		t.Fatal("expected a platform")
	}
}
