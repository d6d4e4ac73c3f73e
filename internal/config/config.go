// Package config holds gqlmock's run configuration: built-in defaults,
// overlaid by an optional YAML file, overlaid by command-line flags at the
// entry point.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no config file is given.
const DefaultPath = "gqlmock.yml"

// Config describes one generation run.
type Config struct {
	// Schema is the path of the SDL schema document.
	Schema string `yaml:"schema"`
	// Fragments is the root of the fragment document tree.
	Fragments string `yaml:"fragments"`
	// Suffix identifies fragment files under the root.
	Suffix string `yaml:"suffix"`
	// OutDir receives generated mock modules.
	OutDir string `yaml:"out_dir"`
	// Registry is the path of the sample identifier store.
	Registry string `yaml:"registry"`
	// TypesImport is the module specifier generated code imports enum
	// types from.
	TypesImport string `yaml:"types_import"`
	// RegistryImport is the module specifier generated code imports the
	// sample identifier registry from.
	RegistryImport string `yaml:"registry_import"`
	// Workers bounds concurrent artifact writes.
	Workers int `yaml:"workers"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Schema:         "schema.graphql",
		Fragments:      ".",
		Suffix:         ".fragment.graphql",
		OutDir:         "__mocks__",
		Registry:       "__mocks__/sample-ids.ts",
		TypesImport:    "../types",
		RegistryImport: "./sample-ids",
		Workers:        4,
	}
}

// Load reads the YAML file at path over the defaults. A missing file yields
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
