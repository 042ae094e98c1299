// Package config loads and saves tripbook settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all tripbook configuration.
type Config struct {
	Gemini     GeminiConfig     `toml:"gemini"`
	Rotation   RotationConfig   `toml:"rotation"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
}

// GeminiConfig holds interpretation service settings.
type GeminiConfig struct {
	APIKey     string `toml:"api_key,omitempty"`
	Model      string `toml:"model,omitempty"`
	BaseURL    string `toml:"base_url,omitempty"`
	TimeoutSec int    `toml:"timeout_sec"`
}

// RotationConfig holds highlight carousel settings.
type RotationConfig struct {
	IntervalSec int `toml:"interval_sec"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig holds log destination settings. An empty file logs to
// tripbook.log in the config directory.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Gemini: GeminiConfig{
			Model:      "gemini-2.5-pro",
			TimeoutSec: 120,
		},
		Rotation: RotationConfig{
			IntervalSec: 8,
		},
		Appearance: AppearanceConfig{
			Theme: "passport",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Timeout returns the generation deadline.
func (c Config) Timeout() time.Duration {
	if c.Gemini.TimeoutSec <= 0 {
		return 120 * time.Second
	}
	return time.Duration(c.Gemini.TimeoutSec) * time.Second
}

// RotationInterval returns the highlight carousel interval.
func (c Config) RotationInterval() time.Duration {
	if c.Rotation.IntervalSec <= 0 {
		return 8 * time.Second
	}
	return time.Duration(c.Rotation.IntervalSec) * time.Second
}

// LogPath returns where logs are written.
func (c Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(ConfigDir(), "tripbook.log")
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tripbook")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tripbook")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// APIKey returns the Gemini API key from GEMINI_API_KEY, API_KEY or the
// config file, in that order.
func APIKey(cfg Config) string {
	for _, env := range []string{"GEMINI_API_KEY", "API_KEY"} {
		if key := strings.TrimSpace(os.Getenv(env)); key != "" {
			return key
		}
	}
	return strings.TrimSpace(cfg.Gemini.APIKey)
}

// APIKeySource names where APIKey found the key, for display.
func APIKeySource(cfg Config) string {
	for _, env := range []string{"GEMINI_API_KEY", "API_KEY"} {
		if strings.TrimSpace(os.Getenv(env)) != "" {
			return "env:" + env
		}
	}
	if strings.TrimSpace(cfg.Gemini.APIKey) != "" {
		return "config"
	}
	return ""
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
