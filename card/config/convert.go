package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jdginn/go-card-reflect/card"
)

// Default returns the configuration of the last tuned widget revision.
func Default() *RenderConfig {
	return &RenderConfig{
		Output: Output{Dir: "runs"},
		Geometry: Geometry{
			ContentWidth:   300,
			ContentHeight:  400,
			ReflectionSize: 80,
			CornerRadius:   24,
		},
		Gradient: Gradient{Stops: []GradientStop{
			{Color: "#000000", Alpha: 120, Position: 0},
			{Color: "#000000", Alpha: 70, Position: 0.4},
			{Color: "#000000", Alpha: 0, Position: 0.9},
		}},
		Blur: Blur{Radius: 8, Downscale: 0.4},
	}
}

func (c *RenderConfig) CardGeometry() card.Geometry {
	return card.Geometry{
		ContentWidth:   c.Geometry.ContentWidth,
		ContentHeight:  c.Geometry.ContentHeight,
		ReflectionSize: c.Geometry.ReflectionSize,
		Elevation:      c.Geometry.Elevation,
		SidePadding:    c.Geometry.SidePadding,
		CornerRadius:   c.Geometry.CornerRadius,
	}
}

// CardStyle converts the gradient and blur sections, parsing stop colors.
func (c *RenderConfig) CardStyle() (card.Style, error) {
	stops := make([]card.Stop, 0, len(c.Gradient.Stops))
	for i, s := range c.Gradient.Stops {
		col, err := parseStopColor(s)
		if err != nil {
			return card.Style{}, fmt.Errorf("gradient stop %d: %w", i, err)
		}
		stops = append(stops, card.Stop{Color: col, Position: s.Position})
	}
	return card.Style{
		Gradient: card.Gradient{Stops: stops},
		Blur:     card.BlurParams{Radius: c.Blur.Radius, Downscale: c.Blur.Downscale},
	}, nil
}

func parseStopColor(s GradientStop) (color.NRGBA, error) {
	hex := s.Color
	if hex == "" {
		hex = "#000000"
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := col.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(min(max(s.Alpha, 0), 255))}, nil
}
