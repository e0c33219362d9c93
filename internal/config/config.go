// Package config handles configuration loading and defaults.
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultAddr            = ":8080"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultShutdownSeconds = 10
	DefaultConfigFile      = "todo-api.toml"
)

// Config holds the serving-boundary configuration. The core stays
// configuration-free; these knobs only shape how it is exposed.
type Config struct {
	Addr            string `toml:"addr"`
	LogLevel        string `toml:"log_level"`
	LogFormat       string `toml:"log_format"`
	ShutdownSeconds int    `toml:"shutdown_seconds"`
}

// Load builds configuration from multiple sources in priority order:
// 1. Defaults
// 2. Config file (TOML)
// 3. Environment variables
// 4. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	setDefaults(cfg)

	configFile := findConfigFile()
	if configFile != "" {
		if err := loadConfigFile(cfg, configFile); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", configFile, err)
		}
	}

	loadFromEnv(cfg)

	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Addr = DefaultAddr
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.ShutdownSeconds = DefaultShutdownSeconds
}

// findConfigFile returns the config file path, or "" when none applies.
// TODO_API_CONFIG wins over a todo-api.toml in the working directory.
func findConfigFile() string {
	if path := os.Getenv("TODO_API_CONFIG"); path != "" {
		return path
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	return ""
}

func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODO_API_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("TODO_API_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODO_API_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}

func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text, json, logfmt)")
	fs.IntVar(&cfg.ShutdownSeconds, "shutdown-seconds", cfg.ShutdownSeconds, "graceful shutdown timeout in seconds")
	return fs.Parse(args)
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.ShutdownSeconds < 1 {
		return fmt.Errorf("shutdown_seconds must be at least 1, got %d", c.ShutdownSeconds)
	}
	return nil
}
