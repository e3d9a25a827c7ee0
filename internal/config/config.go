// Package config loads startup options for brickscan and holds the
// runtime settings the user edits from the settings panel.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no --config is given.
const DefaultFile = "brickscan.yaml"

const envPrefix = "BRICKSCAN_"

// Config is the startup configuration. Only Settings can change at runtime,
// and those changes are never written back.
type Config struct {
	Settings SettingsConfig `yaml:"settings"`
	License  LicenseConfig  `yaml:"license"`
	UI       UIConfig       `yaml:"ui"`
	Log      LogConfig      `yaml:"log"`
}

type SettingsConfig struct {
	Prefix     *string `yaml:"prefix"`
	CodeLength *int    `yaml:"code_length"`
	Beep       *bool   `yaml:"beep"`
}

// LicenseConfig drives the activation gate. An empty ExpectedHost disables it.
type LicenseConfig struct {
	ExpectedHost string `yaml:"expected_host"`
	Host         string `yaml:"host"` // defaults to os.Hostname()
}

type UIConfig struct {
	ToastMs int    `yaml:"toast_ms"`
	Theme   string `yaml:"theme"` // classic | neon | mono
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // debug | info | warn | error
}

// Default returns the configuration used when no file or environment is present.
func Default() *Config {
	return &Config{
		UI:  UIConfig{ToastMs: 1200, Theme: "classic"},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the YAML file at path on top of the defaults. When required is
// false a missing file is not an error.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays BRICKSCAN_* variables found through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "PREFIX"); ok {
		c.Settings.Prefix = &v
	}
	if v, ok := lookup(envPrefix + "CODE_LENGTH"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%sCODE_LENGTH: %w", envPrefix, err)
		}
		c.Settings.CodeLength = &n
	}
	if v, ok := lookup(envPrefix + "BEEP"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%sBEEP: %w", envPrefix, err)
		}
		c.Settings.Beep = &b
	}
	if v, ok := lookup(envPrefix + "EXPECTED_HOST"); ok {
		c.License.ExpectedHost = v
	}
	if v, ok := lookup(envPrefix + "HOST"); ok {
		c.License.Host = v
	}
	if v, ok := lookup(envPrefix + "THEME"); ok {
		c.UI.Theme = v
	}
	if v, ok := lookup(envPrefix + "LOG_FILE"); ok {
		c.Log.File = v
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	return c.Validate()
}

// Validate checks the values that have a fixed domain.
func (c *Config) Validate() error {
	if c.Settings.CodeLength != nil {
		if err := ValidateCodeLength(*c.Settings.CodeLength); err != nil {
			return err
		}
	}
	if c.UI.ToastMs < 0 {
		return fmt.Errorf("toast_ms must not be negative: %d", c.UI.ToastMs)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// InitialSettings resolves the runtime settings the application starts with.
func (c *Config) InitialSettings() Settings {
	s := DefaultSettings()
	if c.Settings.Prefix != nil {
		s.Prefix = *c.Settings.Prefix
	}
	if c.Settings.CodeLength != nil {
		s.CodeLength = *c.Settings.CodeLength
	}
	if c.Settings.Beep != nil {
		s.BeepEnabled = *c.Settings.Beep
	}
	return s
}

// ToastDuration returns how long a notification stays visible.
func (u UIConfig) ToastDuration() time.Duration {
	if u.ToastMs <= 0 {
		return 1200 * time.Millisecond
	}
	return time.Duration(u.ToastMs) * time.Millisecond
}

// ResolveHost returns the configured host identity, falling back to the
// machine hostname.
func (l LicenseConfig) ResolveHost() string {
	if l.Host != "" {
		return l.Host
	}
	h, err := os.Hostname()
	if err != nil {
		return ""
	}
	return h
}

func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", l.Level)
}
