// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

// Package config loads cmd/a2s's optional .a2s.yaml file, following the
// defaults-then-overlay Load pattern used elsewhere in the retrieval
// corpus for gopkg.in/yaml.v3 configuration files.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI defaults a .a2s.yaml file may override. Every
// field has a matching -flag in cmd/a2s; a flag explicitly set on the
// command line always wins over the file.
type Config struct {
	Rules   string `yaml:"rules"`
	Table   string `yaml:"table"`
	Font    string `yaml:"font"`
	Gzip    bool   `yaml:"gzip"`
	Watch   bool   `yaml:"watch"`
	Preview bool   `yaml:"preview"`
}

// Default returns the built-in configuration used when no file is found.
func Default() Config {
	return Config{Table: "original"}
}

// Load reads path (if it exists) and overlays it onto Default. A missing
// file is not an error, so callers can pass a conventional path like
// ".a2s.yaml" unconditionally.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects a table name Table can't build, per §4.8.
func (c Config) Validate() error {
	switch c.Table {
	case "", "demo", "original":
		return nil
	default:
		return fmt.Errorf("unknown table %q, want \"demo\" or \"original\"", c.Table)
	}
}
