// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "folio"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// XDGStateHome returns the XDG state home or a default fallback.
func XDGStateHome() string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "state")
}

// DefaultDBPath returns the path for the SQLite database. FOLIO_DB overrides it.
func DefaultDBPath() string {
	if v := os.Getenv("FOLIO_DB"); v != "" {
		return v
	}
	return filepath.Join(XDGDataHome(), appName, "folio.db")
}

// DefaultConfigPath returns the TOML config path. FOLIO_CONFIG overrides it.
func DefaultConfigPath() string {
	if v := os.Getenv("FOLIO_CONFIG"); v != "" {
		return v
	}
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// DefaultLogPath returns the log file path.
func DefaultLogPath() string {
	return filepath.Join(XDGStateHome(), appName, "folio.log")
}
