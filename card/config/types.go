package config

// RenderConfig represents the complete configuration for rendering reflective
// cards
type RenderConfig struct {
	Metadata Metadata `yaml:"metadata"`
	Input    Input    `yaml:"input"`
	Output   Output   `yaml:"output"`
	Geometry Geometry `yaml:"geometry"`
	Gradient Gradient `yaml:"gradient"`
	Blur     Blur     `yaml:"blur"`
}

type Metadata struct {
	Timestamp string `yaml:"timestamp"` // YYYY-MM-DD HH:MM:SS in UTC
	GitCommit string `yaml:"git_commit,omitempty"`
}

type Input struct {
	Image string `yaml:"image,omitempty"`
}

type Output struct {
	Path string `yaml:"path,omitempty"` // single render target
	Dir  string `yaml:"dir,omitempty"`  // base directory for run directories
}

// Geometry sizes are in pixels
type Geometry struct {
	ContentWidth   int     `yaml:"content_width"`
	ContentHeight  int     `yaml:"content_height"`
	ReflectionSize int     `yaml:"reflection_size"`
	Elevation      int     `yaml:"elevation"`
	SidePadding    int     `yaml:"side_padding"`
	CornerRadius   float64 `yaml:"corner_radius"`
}

type Gradient struct {
	Stops    []GradientStop `yaml:"stops,omitempty"`
	FromFile string         `yaml:"from_file,omitempty"`
}

type GradientStop struct {
	Color    string  `yaml:"color" json:"color"` // #rrggbb
	Alpha    int     `yaml:"alpha" json:"alpha"` // 0-255
	Position float64 `yaml:"position" json:"position"`
}

type Blur struct {
	Radius    float64 `yaml:"radius"`
	Downscale float64 `yaml:"downscale"`
}
