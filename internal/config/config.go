// Package config loads the YAML codegen configuration consumed by the CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	ir "github.com/gqlkit/gqlcodegen/internal/ir"
)

type Config struct {
	// Schema lists SDL file globs, resolved relative to the config file's
	// working directory.
	Schema []string `yaml:"schema"`

	// Operations is the root directory walked for .graphql operation
	// documents.
	Operations string `yaml:"operations"`

	// Output is the file the compiled report is written to; stdout if empty.
	Output string `yaml:"output"`

	Options OptionsConfig `yaml:"options"`
}

type OptionsConfig struct {
	LegacySafelistingCompatibleOperations bool             `yaml:"legacySafelistingCompatibleOperations"`
	ReduceGeneratedSchemaTypes            bool             `yaml:"reduceGeneratedSchemaTypes"`
	Validation                            ValidationConfig `yaml:"validation"`
}

type ValidationConfig struct {
	DisallowedFieldNames DisallowedFieldNamesConfig `yaml:"disallowedFieldNames"`
	SchemaNamespace      string                     `yaml:"schemaNamespace"`
}

type DisallowedFieldNamesConfig struct {
	Entity     []string `yaml:"entity"`
	EntityList []string `yaml:"entityList"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Operations == "" {
		cfg.Operations = "."
	}
	return &cfg, nil
}

// CompilerOptions maps the file representation onto the compiler's options.
func (c *Config) CompilerOptions() ir.Options {
	return ir.Options{
		LegacySafelistingCompatibleOperations: c.Options.LegacySafelistingCompatibleOperations,
		ReduceGeneratedSchemaTypes:            c.Options.ReduceGeneratedSchemaTypes,
		Validation: ir.ValidationOptions{
			DisallowedFieldNames: ir.DisallowedFieldNames{
				Entity:     c.Options.Validation.DisallowedFieldNames.Entity,
				EntityList: c.Options.Validation.DisallowedFieldNames.EntityList,
			},
			SchemaNamespace: c.Options.Validation.SchemaNamespace,
		},
	}
}
