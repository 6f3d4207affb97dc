// Package config loads and saves user defaults for the cinema command.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	appDir   = "cinema-room-manager"
	fileName = "config.json"

	// StyleEnv overrides the configured output style.
	StyleEnv = "CINEMA_STYLE"
)

type Config struct {
	Rows        int    `json:"rows,omitempty"`
	SeatsPerRow int    `json:"seats_per_row,omitempty"`
	Style       string `json:"style,omitempty"`
	LogLevel    string `json:"log_level,omitempty"`
}

// Default is used for every field missing from the config file.
func Default() Config {
	return Config{
		Style:    "plain",
		LogLevel: logrus.WarnLevel.String(),
	}
}

// Load reads the config file, returning defaults when it does not exist.
func Load() (Config, error) {
	cfg := Default()
	path, err := Path()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg.withEnv(), nil
		}
		return cfg, err
	}

	var stored Config
	if err := json.Unmarshal(data, &stored); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg.merge(stored).withEnv(), nil
}

// Save writes cfg to the config file, creating the directory if needed.
func Save(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func (c Config) Validate() error {
	if c.Rows < 0 || c.SeatsPerRow < 0 {
		return errors.New("rows and seats per row must not be negative")
	}
	switch strings.ToLower(c.Style) {
	case "", "plain", "table":
	default:
		return fmt.Errorf("unknown style %q", c.Style)
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return err
		}
	}
	return nil
}

// HasDimensions reports whether both room dimensions are configured.
func (c Config) HasDimensions() bool {
	return c.Rows > 0 && c.SeatsPerRow > 0
}

func (c Config) merge(other Config) Config {
	if other.Rows != 0 {
		c.Rows = other.Rows
	}
	if other.SeatsPerRow != 0 {
		c.SeatsPerRow = other.SeatsPerRow
	}
	if other.Style != "" {
		c.Style = other.Style
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	return c
}

func (c Config) withEnv() Config {
	if style := strings.TrimSpace(os.Getenv(StyleEnv)); style != "" {
		c.Style = style
	}
	return c
}

func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, fileName), nil
}
