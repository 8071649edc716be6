package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ConfigTomlName is the suggested file name for a saved configuration.
const ConfigTomlName = "depviz.toml"

// FilterPlaceholder is shown in place of an absent filter.
const FilterPlaceholder = "(not set)"

// Configuration is the set of visualizer parameters collected from the command line.
// It is built once per invocation and never mutated afterwards.
type Configuration struct {
	PackageName string `toml:"package_name"`
	RepoURL     string `toml:"repo_url"`
	Mode        string `toml:"mode"`
	OutputFile  string `toml:"output_file"`
	Filter      string `toml:"filter,omitempty"`
}

// HasFilter reports whether a filter was supplied. The empty string means "not supplied".
func (c Configuration) HasFilter() bool {
	return c.Filter != ""
}

// FilterDisplay returns the filter, or FilterPlaceholder when none was supplied.
func (c Configuration) FilterDisplay() string {
	if !c.HasFilter() {
		return FilterPlaceholder
	}
	return c.Filter
}

// LoadConfigToml reads a configuration previously written by WriteConfigToml.
func LoadConfigToml(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Configuration
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// WriteConfigToml marshals cfg and writes it to path, overwriting any existing file.
func WriteConfigToml(path string, cfg Configuration) error {
	buf := new(bytes.Buffer)
	if err := toml.NewEncoder(buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	_, err = file.Write(buf.Bytes())
	return err
}
