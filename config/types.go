package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// APIConfig holds Cineamo API connection details
type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// DefaultsConfig contains default values for command flags
type DefaultsConfig struct {
	PerPage int    `mapstructure:"per_page"`
	Format  string `mapstructure:"format"`
	Limit   int    `mapstructure:"limit"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
