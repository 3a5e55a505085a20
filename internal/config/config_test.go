package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if cfg.UI.Lang != nil || cfg.Navigation.SettleMs != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[ui]
lang = "en"
theme = "dark"

[navigation]
tolerance = 2
settle-ms = 400
scroll-padding = 1

[navigation.extra-offset]
skills = -1

[typing]
fast-count = 3
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UI.Lang == nil || *cfg.UI.Lang != "en" {
		t.Fatalf("unexpected lang: %v", cfg.UI.Lang)
	}
	if cfg.Navigation.SettleMs == nil || *cfg.Navigation.SettleMs != 400 {
		t.Fatalf("unexpected settle: %v", cfg.Navigation.SettleMs)
	}
	if cfg.Navigation.ExtraOffset["skills"] != -1 {
		t.Fatalf("unexpected extra offsets: %v", cfg.Navigation.ExtraOffset)
	}
	if cfg.Typing.FastCount == nil || *cfg.Typing.FastCount != 3 {
		t.Fatalf("unexpected fast count: %v", cfg.Typing.FastCount)
	}
	if cfg.Typing.StandardMs != nil {
		t.Fatalf("unset values must stay nil")
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui]\nlanguage = \"en\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestPathOverrides(t *testing.T) {
	t.Setenv("FOLIO_DB", "/tmp/custom.db")
	t.Setenv("FOLIO_CONFIG", "/tmp/custom.toml")
	if got := DefaultDBPath(); got != "/tmp/custom.db" {
		t.Fatalf("unexpected db path %q", got)
	}
	if got := DefaultConfigPath(); got != "/tmp/custom.toml" {
		t.Fatalf("unexpected config path %q", got)
	}
}
