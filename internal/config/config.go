package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultLinger keeps live subscriptions open briefly after a screen closes
	DefaultLinger = 5 * time.Second

	// DataDirEnv overrides the data directory
	DataDirEnv = "TICK_DATA_DIR"

	// ThemeFileEnv points at an extra colors file merged over the config
	ThemeFileEnv = "TICK_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	// DataDir holds the database, the settings file and the logs.
	// Defaults to ~/.tick; a leading ~ is expanded.
	DataDir string `yaml:"data_dir,omitempty"`

	// SearchDebounce delays filtering while typing, e.g. "150ms".
	// Empty or "0" filters on every keystroke.
	SearchDebounce string `yaml:"search_debounce,omitempty"`

	// SubscriptionLinger is how long live lists stay subscribed after the
	// last screen using them closes, e.g. "5s".
	SubscriptionLinger string `yaml:"subscription_linger,omitempty"`

	KeyMappings KeyMappings `yaml:"key_mappings"`
	Colors      Colors      `yaml:"colors"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		Colors:      DefaultColors(),
	}
}

// loadThemeFile loads and merges colors from the TICK_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Colors Colors `yaml:"colors"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		// values in the theme file win over the config file
		themeConfig.Colors.MergeFrom(config.Colors)
		config.Colors = themeConfig.Colors
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := &Config{}
		loadThemeFile(config)
		config.applyDefaults()
		return config, nil
	}

	return LoadFile(configPath)
}

// LoadFile loads config from path. A missing file yields the defaults.
func LoadFile(configPath string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, err
		}
	}

	// Load colors from TICK_THEME_FILE if set
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// ResolveDataDir returns the data directory: TICK_DATA_DIR, then data_dir,
// then ~/.tick.
func (c *Config) ResolveDataDir() (string, error) {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return expandHome(dir)
	}
	if c.DataDir != "" {
		return expandHome(c.DataDir)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".tick"), nil
}

// SearchDebounceDelay returns the parsed search debounce, zero when unset or invalid
func (c *Config) SearchDebounceDelay() time.Duration {
	return parseDuration(c.SearchDebounce, 0)
}

// LingerDelay returns the parsed subscription linger, DefaultLinger when unset or invalid
func (c *Config) LingerDelay() time.Duration {
	return parseDuration(c.SubscriptionLinger, DefaultLinger)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tick", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tick", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.Colors.applyDefaults()
}
