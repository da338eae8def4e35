/*
File    : interop/config/config.go
Author  : Interop Authors
*/

// Package config loads the optional transpiler configuration. The only
// tunable today is the emitter's type map: the built-in Interop-to-Go
// table can be extended or overridden per project through a small YAML
// file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up in the working
// directory when INTEROP_CONFIG is not set.
const DefaultFile = "interop.yaml"

// EnvVar overrides the configuration file location.
const EnvVar = "INTEROP_CONFIG"

// Config represents the transpiler configuration.
type Config struct {
	// Types maps Interop type names to target type names. Entries are
	// merged over the emitter's built-in table (Int -> int,
	// String -> string), later entries winning.
	Types map[string]string `yaml:"types,omitempty"`
}

// Load reads and parses a YAML configuration file.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// LoadDefault loads the configuration from INTEROP_CONFIG or, failing
// that, interop.yaml in the working directory. A missing file is not an
// error - the transpiler runs fine on its built-in type map - but an
// unreadable or malformed file is.
func LoadDefault() (*Config, error) {
	filename := os.Getenv(EnvVar)
	explicit := filename != ""
	if !explicit {
		filename = DefaultFile
	}

	cfg, err := Load(filename)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}
