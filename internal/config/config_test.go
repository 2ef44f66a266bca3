package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	t.Setenv("XDG_CACHE_HOME", "/tmp/cache")

	if got := GetConfigFilePath(); got != filepath.Join("/tmp/cfg", "cardface", "config.toml") {
		t.Errorf("GetConfigFilePath() = %s", got)
	}
	if got := GetThemeLibraryPath(); got != filepath.Join("/tmp/data", "cardface", "themes") {
		t.Errorf("GetThemeLibraryPath() = %s", got)
	}
	if got := GetCacheDir(); got != filepath.Join("/tmp/cache", "cardface") {
		t.Errorf("GetCacheDir() = %s", got)
	}
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
	if _, err := os.Stat(filepath.Join(dir, "cardface", "config.toml")); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestSetDefaultTheme(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := SetDefaultTheme("midnight"); err != nil {
		t.Fatalf("SetDefaultTheme error: %v", err)
	}
	name, err := GetDefaultTheme()
	if err != nil {
		t.Fatalf("GetDefaultTheme error: %v", err)
	}
	if name != "midnight" {
		t.Errorf("GetDefaultTheme() = %s, want midnight", name)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "cardface", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("log_level = \"debug\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.CardWidth != 100 || cfg.DefaultTheme != "classic" {
		t.Errorf("LoadConfig() = %+v", cfg)
	}
}

func TestLoadConfigBadFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "cardface", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("log_level = \n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig succeeded on malformed TOML")
	}
}
