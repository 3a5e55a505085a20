// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	UI         UIConfig         `toml:"ui"`
	Navigation NavigationConfig `toml:"navigation"`
	Typing     TypingConfig     `toml:"typing"`
}

// UIConfig maps general settings.
type UIConfig struct {
	Lang     *string `toml:"lang"`
	Theme    *string `toml:"theme"`
	Content  *string `toml:"content"`
	LogLevel *string `toml:"log-level"`
}

// NavigationConfig maps section navigation settings.
type NavigationConfig struct {
	Tolerance     *int           `toml:"tolerance"`
	SettleMs      *int           `toml:"settle-ms"`
	ScrollPadding *int           `toml:"scroll-padding"`
	ExtraOffset   map[string]int `toml:"extra-offset"`
}

// TypingConfig maps typing cadence settings.
type TypingConfig struct {
	FastMs          *int `toml:"fast-ms"`
	StandardMs      *int `toml:"standard-ms"`
	FastCount       *int `toml:"fast-count"`
	PulseMs         *int `toml:"pulse-ms"`
	CompleteDelayMs *int `toml:"complete-delay-ms"`
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
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
