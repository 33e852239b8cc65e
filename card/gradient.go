package card

import (
	"image"
	"image/color"
	"math"
	"sort"

	lin "github.com/sgreben/piecewiselinear"
)

// Stop is a single gradient color stop. Only the alpha of Color affects the
// fade; the RGB part is kept so configs can round-trip the original colors.
type Stop struct {
	Color    color.NRGBA
	Position float64
}

// Gradient is a vertical fade applied to the reflection, position 0 being the
// edge next to the card.
type Gradient struct {
	Stops []Stop
}

// BlurParams control the cheap large-radius blur: the strip is shrunk by
// Downscale, blurred by Radius and scaled back up.
type BlurParams struct {
	Radius    float64
	Downscale float64
}

// Style groups the tunable look of the reflection.
type Style struct {
	Gradient Gradient
	Blur     BlurParams
}

// DefaultStyle returns the look of the last tuned revision of the widget.
func DefaultStyle() Style {
	return Style{
		Gradient: Gradient{Stops: []Stop{
			{Color: color.NRGBA{A: 120}, Position: 0},
			{Color: color.NRGBA{A: 70}, Position: 0.4},
			{Color: color.NRGBA{A: 0}, Position: 0.9},
		}},
		Blur: BlurParams{Radius: 8, Downscale: 0.4},
	}
}

// samples returns the stop positions and alphas sorted by position, with
// positions clamped to [0,1] and duplicates dropped.
func (g Gradient) samples() (xs, ys []float64) {
	stops := make([]Stop, len(g.Stops))
	copy(stops, g.Stops)
	sort.SliceStable(stops, func(i, j int) bool { return stops[i].Position < stops[j].Position })

	xs = make([]float64, 0, len(stops))
	ys = make([]float64, 0, len(stops))
	for _, s := range stops {
		if math.IsNaN(s.Position) {
			continue
		}
		p := math.Min(math.Max(s.Position, 0), 1)
		if len(xs) > 0 && p <= xs[len(xs)-1] {
			continue
		}
		xs = append(xs, p)
		ys = append(ys, float64(s.Color.A)/255)
	}
	return xs, ys
}

// AlphaAt returns the fade factor in [0,1] at t, where t runs from 0 at the
// card edge to 1 at the far edge. Outside the stop range the nearest stop
// wins. A gradient without stops does not fade.
func (g Gradient) AlphaAt(t float64) float64 {
	xs, ys := g.samples()
	switch {
	case len(xs) == 0:
		return 1
	case len(xs) == 1 || t <= xs[0]:
		return ys[0]
	case t >= xs[len(xs)-1]:
		return ys[len(ys)-1]
	}
	f := lin.Function{X: xs, Y: ys}
	return math.Min(math.Max(f.At(t), 0), 1)
}

// Mask renders the gradient into a w x h coverage mask, sampling each row at
// its center.
func (g Gradient) Mask(w, h int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		a := uint8(math.Round(g.AlphaAt((float64(y)+0.5)/float64(h)) * 255))
		row := m.Pix[y*m.Stride : y*m.Stride+w]
		for x := range row {
			row[x] = a
		}
	}
	return m
}

// Fade multiplies img by the gradient and clips it to a rounded rectangle.
func Fade(img *image.RGBA, g Gradient, radius float64) *image.RGBA {
	b := img.Bounds()
	mask := multiplyMasks(g.Mask(b.Dx(), b.Dy()), RoundedRectMask(b.Dx(), b.Dy(), radius))
	return applyMask(img, mask)
}
