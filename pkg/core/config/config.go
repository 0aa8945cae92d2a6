// File: config.go
// Title: CLI Configuration Implementation
// Description: Implements the Config type and TOML loading for the truckdef
//              command line tool.

package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config represents the tool configuration
type Config struct {
	Log       LogConfig       `toml:"log"`
	Resources ResourcesConfig `toml:"resources"`
}

// LogConfig controls log output of the CLI and the parser
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// ResourcesConfig controls the resource lookup used for texture validation
type ResourcesConfig struct {
	// Roots lists directories searched (non-recursively) when the parser
	// checks whether a texture referenced by managedmaterials exists.
	Roots []string `toml:"roots"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a TOML configuration file. A missing file yields the default
// configuration without error; a malformed file is reported.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
