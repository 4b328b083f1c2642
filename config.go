package alog

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/config"
)

// Config holds writer construction values, usually sourced from a TOML file.
type Config struct {
	Tag      string `toml:"tag"`      // Record tag, truncated to TagMaxLen bytes
	Priority string `toml:"priority"` // Priority name, see ParsePriority
	Fallback string `toml:"fallback"` // Sink target when the platform logger is absent: "stderr", "stdout", or "discard"
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Tag:      DefaultTag,
	Priority: "info",
	Fallback: "stderr",
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file and returns a
// validated Config. A missing file yields the defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("alog.", *cfg); err != nil {
		return nil, fmt.Errorf("failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "alog.", cfg); err != nil {
		return nil, fmt.Errorf("failed to extract config values: %w", err)
	}

	// Validate the loaded configuration
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	fields := []struct {
		key string
		dst *string
	}{
		{"tag", &cfg.Tag},
		{"priority", &cfg.Priority},
		{"fallback", &cfg.Fallback},
	}

	for _, f := range fields {
		val, found := loader.Get(prefix + f.key)
		if !found {
			continue // Use default value
		}
		s, ok := val.(string)
		if !ok {
			return fmt.Errorf("failed to set field %s: expected string, got %T", f.key, val)
		}
		*f.dst = s
	}

	return nil
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if _, err := ParsePriority(c.Priority); err != nil {
		return err
	}

	switch c.Fallback {
	case "stderr", "stdout", "discard":
	default:
		return fmtErrorf("invalid fallback: '%s' (use stderr, stdout, or discard)", c.Fallback)
	}

	// Tag is free-form; oversized tags are truncated at construction.
	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}
