package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "CINEMAQUERY"

// Load loads the configuration from file, falling back to defaults and
// CINEMAQUERY_* environment variables when no file exists.
func Load(configPath string) (*Config, error) {
	v := newViper(configPath)

	// A missing config file is fine, everything has a default.
	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Set persists a single key to the config file, creating the file in the
// user config directory when none exists yet. Keys use viper dot notation,
// e.g. "api.base_url" or "defaults.per_page".
func Set(configPath, key, value string) error {
	v := newViper(configPath)

	if err := readConfig(v); err != nil {
		return err
	}

	v.Set(key, value)

	target := v.ConfigFileUsed()
	if target == "" {
		target = configPath
	}
	if target == "" {
		dir, err := DefaultDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		target = filepath.Join(dir, "config.yaml")
	}

	if err := v.WriteConfigAs(target); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Get reads a single key from the config file. Missing keys return "".
func Get(configPath, key string) (string, error) {
	v := newViper(configPath)

	if err := readConfig(v); err != nil {
		return "", err
	}

	return v.GetString(key), nil
}

// All returns every resolved setting, defaults included.
func All(configPath string) (map[string]any, error) {
	v := newViper(configPath)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	return v.AllSettings(), nil
}

// DefaultDir returns the per-user config directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "cinemaquery"), nil
}

// readConfig loads the config file, tolerating its absence: a file given
// explicitly may not exist yet (first run before "config set"), and the
// search-path lookup may simply find nothing.
func readConfig(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("error reading config: %w", err)
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := DefaultDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath("/etc/cinemaquery/")
	}

	return v
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "https://api.cineamo.com")
	v.SetDefault("api.timeout", "15s")
	v.SetDefault("api.user_agent", "cinemaquery")

	v.SetDefault("defaults.per_page", 10)
	v.SetDefault("defaults.format", "table")
	v.SetDefault("defaults.limit", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}

	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}

	if cfg.Defaults.PerPage < 1 {
		return fmt.Errorf("defaults.per_page must be >= 1")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	validOutput := map[string]bool{
		"table": true,
		"json":  true,
	}
	if !validOutput[cfg.Defaults.Format] {
		return fmt.Errorf("invalid output format: %s", cfg.Defaults.Format)
	}

	return nil
}
