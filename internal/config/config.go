// ABOUTME: Configuration management for haven with YAML config loading.
// ABOUTME: Handles data path overrides, chat reply delay, and ~ expansion.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/2389-research/haven/internal/store"
)

// DefaultReplyDelay is the pause before a chat reply is shown. It mirrors
// the deliberate beat the original web UI put between message and response.
const DefaultReplyDelay = time.Second

// Config stores haven configuration loaded from ~/.config/haven/config.yaml.
type Config struct {
	Data DataConfig `yaml:"data"`
	Chat ChatConfig `yaml:"chat"`
}

// DataConfig holds optional overrides for where the database lives.
type DataConfig struct {
	Path string `yaml:"path"`
}

// ChatConfig holds chat presentation settings.
type ChatConfig struct {
	ReplyDelayMS int `yaml:"reply_delay_ms"`
}

// GetDBPath returns the database path: config override first, then
// HAVEN_DB_PATH, then the XDG default.
func (c *Config) GetDBPath() (string, error) {
	if c.Data.Path != "" {
		return ExpandPath(c.Data.Path)
	}
	return store.ResolveDBPath()
}

// ReplyDelay returns the configured chat reply delay.
func (c *Config) ReplyDelay() time.Duration {
	if c.Chat.ReplyDelayMS > 0 {
		return time.Duration(c.Chat.ReplyDelayMS) * time.Millisecond
	}
	return DefaultReplyDelay
}

// GetConfigPath returns the config file path.
func GetConfigPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "haven", "config.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return home, nil
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

// Load reads config from disk. Returns default config if file doesn't exist.
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
