package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
)

// Config represents ~/.gamechat/config.toml.
type Config struct {
	PremiumEnabled bool   `toml:"premium_enabled"`
	InitialTab     string `toml:"initial_tab"`
	SearchFilters  bool   `toml:"search_filters"`
	LogLevel       string `toml:"log_level"`
}

// Overrides carries command-line values that take precedence over the file.
// Nil fields leave the file (or default) value untouched.
type Overrides struct {
	PremiumEnabled *bool
	InitialTab     string
	SearchFilters  *bool
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		PremiumEnabled: true,
		InitialTab:     "chats",
		SearchFilters:  false,
		LogLevel:       "info",
	}
}

// Load reads config from the given path. Keys missing from the file keep
// their default values. Returns an error if the file is missing.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}

// Resolve builds the effective configuration using precedence:
// 1. command-line overrides
// 2. the config file at path (a missing file is not an error)
// 3. Default()
func Resolve(path string, o Overrides) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if o.PremiumEnabled != nil {
		cfg.PremiumEnabled = *o.PremiumEnabled
	}
	if o.InitialTab != "" {
		cfg.InitialTab = o.InitialTab
	}
	if o.SearchFilters != nil {
		cfg.SearchFilters = *o.SearchFilters
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be verified by the TOML decoder.
// The initial tab is validated later against the enabled tab set.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel; an empty value means info.
func (c *Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
