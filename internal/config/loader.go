package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Default returns the configuration used when there is no config file.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)

	return c
}

// LoadFile loads and parses a config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Load reads path when set. With an empty path it reads DefaultFile if it
// exists and falls back to Default otherwise.
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}

	c, err := LoadFile(DefaultFile)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return c, err
}

// Parse parses and validates YAML data.
func Parse(data []byte) (*Config, error) {
	var c Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := Validate(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Version == "" {
		c.Version = "1"
	}

	if c.Output == "" {
		c.Output = "quote_gen.go"
	}

	if c.QuoteImport == "" {
		c.QuoteImport = "quote-generator/quote"
	}
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteFile writes a Config to the given path.
func WriteFile(c *Config, path string) error {
	data, err := Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
