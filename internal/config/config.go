package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	DefaultTheme string  `toml:"default_theme"`
	LogLevel     string  `toml:"log_level"`
	CardWidth    float64 `toml:"card_width"`
	CardHeight   float64 `toml:"card_height"`
	DragDistance float64 `toml:"drag_distance"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		DefaultTheme: "classic",
		LogLevel:     "info",
		CardWidth:    100,
		CardHeight:   140,
		DragDistance: 3,
	}
}

// xdgDir returns the XDG base directory named by env, or ~/<fallback...>
// when the variable is unset.
func xdgDir(env string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

func GetXDGDataHome() string   { return xdgDir("XDG_DATA_HOME", ".local", "share") }
func GetXDGConfigHome() string { return xdgDir("XDG_CONFIG_HOME", ".config") }
func GetXDGCacheHome() string  { return xdgDir("XDG_CACHE_HOME", ".cache") }

// GetThemeLibraryPath returns the path to the theme library
func GetThemeLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "cardface", "themes")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardface", "config.toml")
}

// GetCacheDir returns the directory for generated artifacts
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), "cardface")
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// GetDefaultTheme returns the default theme name from config
func GetDefaultTheme() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.DefaultTheme, nil
}

// SetDefaultTheme sets the default theme in the config
func SetDefaultTheme(themeName string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultTheme = themeName
	return writeConfig(config)
}
