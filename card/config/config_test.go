package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdginn/go-card-reflect/card"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "card.yaml", `
input:
  image: art/nasa_1.jpg
output:
  path: /tmp/out.png
geometry:
  content_width: 100
  content_height: 150
  reflection_size: 50
  corner_radius: 12
gradient:
  stops:
    - {color: "#ffffff", alpha: 80, position: 0}
    - {color: "#ffffff", alpha: 32, position: 0.5}
    - {color: "#ffffff", alpha: 0, position: 1}
blur:
  radius: 8
  downscale: 0.33
`)

	cfg, err := LoadFromFile(path, LoadOptions{ValidateImmediately: true, ResolvePaths: true, MergeFiles: true})
	require.NoError(t, err)

	assert.Equal(filepath.Join(dir, "art/nasa_1.jpg"), cfg.Input.Image)
	assert.Equal("/tmp/out.png", cfg.Output.Path)
	assert.Equal(filepath.Join(dir, "runs"), cfg.Output.Dir)
	assert.Equal(card.Geometry{ContentWidth: 100, ContentHeight: 150, ReflectionSize: 50, CornerRadius: 12}, cfg.CardGeometry())

	style, err := cfg.CardStyle()
	require.NoError(t, err)
	assert.Equal(card.BlurParams{Radius: 8, Downscale: 0.33}, style.Blur)
	require.Len(t, style.Gradient.Stops, 3)
	assert.Equal(card.Stop{Color: color.NRGBA{R: 255, G: 255, B: 255, A: 32}, Position: 0.5}, style.Gradient.Stops[1])
}

func TestLoadKeepsDefaults(t *testing.T) {
	assert := assert.New(t)
	path := writeFile(t, t.TempDir(), "card.yaml", "geometry:\n  content_width: 64\n")

	cfg, err := LoadFromFile(path, LoadOptions{ValidateImmediately: true})
	require.NoError(t, err)
	assert.Equal(64, cfg.Geometry.ContentWidth)
	assert.Equal(400, cfg.Geometry.ContentHeight)
	assert.Equal(Default().Gradient.Stops, cfg.Gradient.Stops)
	assert.Equal(Default().Blur, cfg.Blur)
}

func TestLoadMergesGradientFile(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	writeFile(t, dir, "fade.json", `[{"color": "#000000", "alpha": 255, "position": 0}, {"alpha": 0, "position": 1}]`)
	path := writeFile(t, dir, "card.yaml", "gradient:\n  from_file: fade.json\n")

	cfg, err := LoadFromFile(path, LoadOptions{ValidateImmediately: true, ResolvePaths: true, MergeFiles: true})
	require.NoError(t, err)
	require.Len(t, cfg.Gradient.Stops, 2)
	assert.Equal(255, cfg.Gradient.Stops[0].Alpha)

	style, err := cfg.CardStyle()
	require.NoError(t, err)
	assert.InDelta(0.5, style.Gradient.AlphaAt(0.5), 1e-9)
}

func TestInlineStopsWinOverFile(t *testing.T) {
	g := Gradient{
		Stops:    []GradientStop{{Alpha: 10}},
		FromFile: "/does/not/exist.json",
	}
	require.NoError(t, g.MergeStops())
	assert.Len(t, g.Stops, 1)
}

func TestLoadErrors(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	_, err := LoadFromFile(filepath.Join(dir, "missing.yaml"), LoadOptions{})
	assert.Error(err)

	_, err = LoadFromFile(writeFile(t, dir, "bad.yaml", "geometry: [1, 2"), LoadOptions{})
	assert.Error(err)

	_, err = LoadFromFile(writeFile(t, dir, "invalid.yaml", "blur:\n  downscale: 3\n"), LoadOptions{ValidateImmediately: true})
	require.Error(t, err)
	assert.Contains(err.Error(), "BLUR:\n  - downscale: must be in (0, 1]")

	_, err = LoadFromFile(writeFile(t, dir, "merge.yaml", "gradient:\n  from_file: nope.json\n"), LoadOptions{ResolvePaths: true, MergeFiles: true})
	assert.Error(err)
}

func TestSaveToFileRoundTrip(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "saved.yaml")

	cfg := Default()
	cfg.Geometry.Elevation = 6
	require.NoError(t, SaveToFile(cfg, path))
	assert.NotEmpty(cfg.Metadata.Timestamp)

	loaded, err := LoadFromFile(path, LoadOptions{ValidateImmediately: true})
	require.NoError(t, err)
	assert.Equal(cfg, loaded)
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)
	assert.Empty(Default().Validate())

	cfg := Default()
	cfg.Geometry.ContentWidth = 0
	cfg.Geometry.ReflectionSize = 500
	cfg.Geometry.CornerRadius = -1
	cfg.Gradient.Stops = []GradientStop{
		{Color: "red", Alpha: 10, Position: 0.5},
		{Color: "#000000", Alpha: 300, Position: 0.2},
	}
	cfg.Blur.Radius = -4
	cfg.Blur.Downscale = 0

	fields := map[string]bool{}
	for _, e := range cfg.Validate() {
		fields[e.Field] = true
	}
	for _, f := range []string{
		"geometry.content_width",
		"geometry.reflection_size",
		"geometry.corner_radius",
		"gradient.stops[0].color",
		"gradient.stops[1].alpha",
		"gradient.stops[1].position",
		"blur.radius",
		"blur.downscale",
	} {
		assert.True(fields[f], "expected error for %s", f)
	}

	empty := Default()
	empty.Gradient.Stops = nil
	errs := empty.Validate()
	require.Len(t, errs, 1)
	assert.Equal("gradient", errs[0].Field)
}

func TestFormatValidationErrors(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("", FormatValidationErrors(nil))

	out := FormatValidationErrors([]ValidationError{
		{Field: "geometry.content_width", Message: "must be positive"},
		{Field: "blur.radius", Message: "must be non-negative"},
		{Field: "gradient", Message: "either stops or from_file must be specified"},
	})
	assert.True(strings.HasPrefix(out, "Validation Errors:\n"))
	assert.Less(strings.Index(out, "GEOMETRY"), strings.Index(out, "BLUR"))
	assert.Contains(out, "  - content_width: must be positive\n")
	assert.Contains(out, "  - general: either stops or from_file must be specified\n")
}

func TestCardStyleRejectsBadColor(t *testing.T) {
	cfg := Default()
	cfg.Gradient.Stops[1].Color = "#zzzzzz"
	_, err := cfg.CardStyle()
	assert.Error(t, err)
}
