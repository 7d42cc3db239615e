// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Settings SettingsConfig `toml:"settings"`
	Practice PracticeConfig `toml:"practice"`
}

// SettingsConfig maps user preferences.
type SettingsConfig struct {
	Volume       *float64 `toml:"volume"`
	Fullscreen   *bool    `toml:"fullscreen"`
	ShowTooltips *bool    `toml:"show-tooltips"`
	BrushSize    *int     `toml:"brush-size"`
	BrushColor   *int     `toml:"brush-color"`
	CachePolicy  *string  `toml:"cache-policy"`
	CacheSize    *int     `toml:"cache-size"`
	SaveDir      *string  `toml:"save-dir"`
}

// PracticeConfig maps practice-related settings.
type PracticeConfig struct {
	Mode       *string  `toml:"mode"`
	Difficulty *string  `toml:"difficulty"`
	Sentences  *string  `toml:"sentences"`
	FocusWeak  *bool    `toml:"focus-weak"`
	WeakTop    *int     `toml:"weak-top"`
	WeakFactor *float64 `toml:"weak-factor"`
	WeakWindow *int     `toml:"weak-window"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
