/*
Package config manages the TOML runtime config for the inzaghi CLI.
*/
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure.
type Config struct {
	Data DataConfig `toml:"data"`
	CLI  CliConfig  `toml:"cli"`
}

// DataConfig points at the dataset file. The -data flag and INZAGHI_DATA
// env var both override it.
type DataConfig struct {
	Path string `toml:"path"`
}

// CliConfig holds interactive interface options. The candidate cap applies
// to free-text queries only; single-index commands print everything.
type CliConfig struct {
	MaxCandidates int `toml:"max_candidates"`
}

// DefaultConfig returns the builtin defaults.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{Path: "data/restaurants.json"},
		CLI:  CliConfig{MaxCandidates: 15},
	}
}

// InitConfig loads the config at path, writing the defaults there first if
// the file does not exist yet.
func InitConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := cfg.Save(path); err != nil {
			log.Warnf("could not write default config to %s: %v", path, err)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.CLI.MaxCandidates <= 0 {
		cfg.CLI.MaxCandidates = DefaultConfig().CLI.MaxCandidates
	}
	return cfg, nil
}

// Save writes the config to path as TOML.
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}
