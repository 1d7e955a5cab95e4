// Package config loads render settings from an optional TOML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"
)

// DefaultPath is consulted when no explicit config path is given.
const DefaultPath = "pretty.toml"

// Config holds the render settings. TOML values override the defaults
// and environment variables override both.
type Config struct {
	// Width is the line budget output is laid out against.
	Width int `toml:"width" env:"PRETTY_WIDTH"`
	// Indent is the number of spaces added per nesting level.
	Indent int `toml:"indent" env:"PRETTY_INDENT"`
}

// Options controls where Load looks for settings.
type Options struct {
	// Path is an explicit TOML file, which must exist. Empty falls
	// back to DefaultPath when that file is present.
	Path string
	// EnvFilePath is an optional env file loaded into the process
	// environment before it is read. A missing file only logs a
	// warning.
	EnvFilePath string
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Width:  80,
		Indent: 2,
	}
}

// Load resolves the configuration: defaults first, then the TOML file,
// then the environment.
func Load(opts *Options) (*Config, error) {
	cfg := DefaultConfig()

	path := ""
	if opts != nil && opts.Path != "" {
		path = opts.Path
	} else if _, err := os.Stat(DefaultPath); err == nil {
		path = DefaultPath
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if opts != nil && opts.EnvFilePath != "" {
		if err := godotenv.Load(opts.EnvFilePath); err != nil {
			log.WithFields(log.Fields{"path": opts.EnvFilePath}).Warn("could not load env file")
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the renderer cannot honor.
func (c *Config) Validate() error {
	if c.Width < 0 {
		return errors.New("width must be non-negative")
	}
	if c.Indent < 0 {
		return errors.New("indent must be non-negative")
	}
	return nil
}
