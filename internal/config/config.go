package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Convert ConvertConfig `toml:"convert"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type ConvertConfig struct {
	// IncludeMaps flattens the proficiency-level and debuff maps into the
	// output row. Off by default to keep the historical column set.
	IncludeMaps bool `toml:"include_maps"`
	// ListDelimiter joins reagent and aspect values inside their columns.
	ListDelimiter string `toml:"list_delimiter"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Convert: ConvertConfig{
			IncludeMaps:   false,
			ListDelimiter: "|",
		},
	}
}
