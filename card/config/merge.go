package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// MergeStops loads the stops in FromFile when no inline stops are given.
// Inline stops take precedence over the file.
func (g *Gradient) MergeStops() error {
	if g.FromFile == "" || len(g.Stops) > 0 {
		return nil
	}

	data, err := os.ReadFile(g.FromFile)
	if err != nil {
		return fmt.Errorf("reading gradient file: %w", err)
	}

	var stops []GradientStop
	if err := json.Unmarshal(data, &stops); err != nil {
		return fmt.Errorf("parsing gradient file: %w", err)
	}
	g.Stops = stops
	return nil
}

// LoadAndMerge loads all external files and merges their contents
func (c *RenderConfig) LoadAndMerge() error {
	if err := c.Gradient.MergeStops(); err != nil {
		return fmt.Errorf("merging gradient: %w", err)
	}
	return nil
}
