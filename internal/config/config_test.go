// ABOUTME: Tests for haven configuration loading and path expansion.
// ABOUTME: Covers YAML parsing, defaults, reply delay, and ~ expansion.
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"tilde only", "~", home},
		{"tilde slash", "~/foo/bar", filepath.Join(home, "foo", "bar")},
		{"absolute", "/tmp/foo", "/tmp/foo"},
		{"relative", "foo/bar", "foo/bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			if err != nil {
				t.Fatalf("ExpandPath(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLoadDefaultConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Data.Path != "" {
		t.Error("expected empty data path in default config")
	}
	if cfg.ReplyDelay() != DefaultReplyDelay {
		t.Errorf("expected default reply delay, got %v", cfg.ReplyDelay())
	}
}

func TestLoadYAMLConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configDir := filepath.Join(tmpDir, "haven")
	if err := os.MkdirAll(configDir, 0750); err != nil {
		t.Fatalf("MkdirAll error: %v", err)
	}

	yaml := "data:\n  path: /tmp/haven-test.db\nchat:\n  reply_delay_ms: 250\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(yaml), 0600); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Data.Path != "/tmp/haven-test.db" {
		t.Errorf("data path = %q, want /tmp/haven-test.db", cfg.Data.Path)
	}
	if cfg.ReplyDelay() != 250*time.Millisecond {
		t.Errorf("reply delay = %v, want 250ms", cfg.ReplyDelay())
	}

	dbPath, err := cfg.GetDBPath()
	if err != nil {
		t.Fatalf("GetDBPath error: %v", err)
	}
	if dbPath != "/tmp/haven-test.db" {
		t.Errorf("GetDBPath = %q, want /tmp/haven-test.db", dbPath)
	}
}

func TestGetDBPathFallsThroughToDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	t.Setenv("HAVEN_DB_PATH", "")

	cfg := &Config{}
	dbPath, err := cfg.GetDBPath()
	if err != nil {
		t.Fatalf("GetDBPath error: %v", err)
	}
	if dbPath != filepath.Join("/tmp/xdg-data", "haven", "haven.db") {
		t.Errorf("GetDBPath = %q", dbPath)
	}
}

func TestSaveAndReload(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{}
	cfg.Data.Path = "~/journals/haven.db"
	cfg.Chat.ReplyDelayMS = 500

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	reloaded, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if reloaded.Data.Path != "~/journals/haven.db" {
		t.Errorf("data path = %q", reloaded.Data.Path)
	}
	if reloaded.Chat.ReplyDelayMS != 500 {
		t.Errorf("reply_delay_ms = %d", reloaded.Chat.ReplyDelayMS)
	}
}
