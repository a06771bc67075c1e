package config

import (
	"fmt"
	"os"

	"github.com/san-kum/bishop/internal/bishop"
	"github.com/san-kum/bishop/internal/input"
	"gopkg.in/yaml.v3"
)

const (
	DefaultInput    = string(input.Bin)
	DefaultHash     = string(input.SHA256)
	DefaultTheme    = "none"
	DefaultDataDir  = ".bishop"
	DefaultLogLevel = "warn"
)

type Config struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Chars    string `yaml:"chars"`
	Top      string `yaml:"top"`
	Bottom   string `yaml:"bottom"`
	Input    string `yaml:"input"`
	Hash     string `yaml:"hash"`
	Theme    string `yaml:"theme"`
	Quiet    bool   `yaml:"quiet"`
	DataDir  string `yaml:"data_dir"`
	LogLevel string `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:    bishop.DefaultSize.W,
		Height:   bishop.DefaultSize.H,
		Chars:    bishop.DefaultChars,
		Input:    DefaultInput,
		Hash:     DefaultHash,
		Theme:    DefaultTheme,
		DataDir:  DefaultDataDir,
		LogLevel: DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks geometry, palette and selectors before any input is
// read.
func (c *Config) Validate() error {
	if err := bishop.CheckSize(c.Width, c.Height); err != nil {
		return err
	}
	if _, err := c.Options(); err != nil {
		return err
	}
	if _, err := input.ParseType(c.Input); err != nil {
		return err
	}
	if _, err := input.ParseAlgorithm(c.Hash); err != nil {
		return err
	}
	return nil
}

func (c *Config) Options() (bishop.Options, error) {
	return bishop.NewOptions(c.Chars, c.Top, c.Bottom)
}

func (c *Config) InputType() input.Type {
	t, err := input.ParseType(c.Input)
	if err != nil {
		return input.Bin
	}
	return t
}

func (c *Config) Algorithm() input.Algorithm {
	a, err := input.ParseAlgorithm(c.Hash)
	if err != nil {
		return input.SHA256
	}
	return a
}
