package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadOptions configures the behavior of config loading
type LoadOptions struct {
	ValidateImmediately bool
	ResolvePaths        bool
	MergeFiles          bool
}

// LoadFromFile loads a RenderConfig from a YAML file. Fields missing from the
// file keep the values of Default.
func LoadFromFile(path string, opts LoadOptions) (*RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	defaultStops := config.Gradient.Stops
	config.Gradient.Stops = nil
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if len(config.Gradient.Stops) == 0 && config.Gradient.FromFile == "" {
		config.Gradient.Stops = defaultStops
	}

	if opts.ResolvePaths {
		resolver := NewPathResolver(filepath.Dir(path))
		config.ResolvePaths(resolver)
	}

	if opts.MergeFiles {
		if err := config.LoadAndMerge(); err != nil {
			return nil, fmt.Errorf("merging external files: %w", err)
		}
	}

	if opts.ValidateImmediately {
		if errs := config.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("invalid config:\n%s", FormatValidationErrors(errs))
		}
	}

	return config, nil
}

// SaveToFile saves a RenderConfig to a YAML file
func SaveToFile(config *RenderConfig, path string) error {
	NewMetadataCollector().PopulateMetadata(config)

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ResolvePaths makes every relative path in the config relative to the
// resolver's base directory
func (c *RenderConfig) ResolvePaths(resolver *PathResolver) {
	if c.Input.Image != "" {
		c.Input.Image = resolver.ResolvePath(c.Input.Image)
	}
	if c.Output.Path != "" {
		c.Output.Path = resolver.ResolvePath(c.Output.Path)
	}
	if c.Output.Dir != "" {
		c.Output.Dir = resolver.ResolvePath(c.Output.Dir)
	}
	if c.Gradient.FromFile != "" {
		c.Gradient.FromFile = resolver.ResolvePath(c.Gradient.FromFile)
	}
}
