package card

import (
	"fmt"
	"image"
	"image/color"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// FadeProfile returns the mean alpha (0..1) of each reflection row of a
// composite produced by Render with geometry g, starting at the card edge.
func FadeProfile(img *image.RGBA, g Geometry) []float64 {
	r := g.ReflectionRect().Intersect(img.Bounds())
	if r.Empty() {
		return nil
	}
	profile := make([]float64, 0, r.Dy())
	row := make([]float64, r.Dx())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x-r.Min.X] = float64(img.RGBAAt(x, y).A) / 255
		}
		profile = append(profile, stat.Mean(row, nil))
	}
	return profile
}

// PlotFadeProfile writes a chart comparing the measured fade of img with the
// gradient configured in s. The file format follows the extension of path.
func PlotFadeProfile(img *image.RGBA, g Geometry, s Style, width, height int, path string) error {
	profile := FadeProfile(img, g)
	if len(profile) == 0 {
		return fmt.Errorf("composite has no reflection to plot")
	}

	p := plot.New()
	p.Title.Text = "Reflection fade"
	p.X.Label.Text = "Distance from card (fraction of reflection)"
	p.Y.Label.Text = "Alpha"
	p.Y.Min, p.Y.Max = 0, 1

	measured := make(plotter.XYs, len(profile))
	configured := make(plotter.XYs, len(profile))
	for i, a := range profile {
		t := (float64(i) + 0.5) / float64(len(profile))
		measured[i] = plotter.XY{X: t, Y: a}
		configured[i] = plotter.XY{X: t, Y: s.Gradient.AlphaAt(t)}
	}

	measuredLine, err := plotter.NewLine(measured)
	if err != nil {
		return fmt.Errorf("building measured line: %w", err)
	}
	measuredLine.Color = color.RGBA{R: 200, A: 255}

	configuredLine, err := plotter.NewLine(configured)
	if err != nil {
		return fmt.Errorf("building gradient line: %w", err)
	}
	configuredLine.Color = color.RGBA{B: 200, A: 255}
	configuredLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(measuredLine, configuredLine)
	p.Legend.Add("measured", measuredLine)
	p.Legend.Add("gradient", configuredLine)

	if err := p.Save(vg.Points(float64(width)), vg.Points(float64(height)), path); err != nil {
		return fmt.Errorf("saving profile plot: %w", err)
	}
	return nil
}
