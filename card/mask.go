package card

import (
	"image"
	"image/draw"

	"github.com/fogleman/gg"
)

// RoundedRectMask rasterizes an anti-aliased rounded rectangle covering the
// whole w x h area. The radius is clamped to half of the smaller side; a
// non-positive radius yields a nil mask, meaning "no masking".
func RoundedRectMask(w, h int, radius float64) *image.Alpha {
	r := clampRadius(radius, w, h)
	if r == 0 {
		return nil
	}
	dc := gg.NewContext(w, h)
	dc.SetRGBA(0, 0, 0, 1)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), r)
	dc.Fill()
	return dc.AsMask()
}

// RoundCorners clips img to a rounded rectangle of the given radius.
func RoundCorners(img *image.RGBA, radius float64) *image.RGBA {
	b := img.Bounds()
	return applyMask(img, RoundedRectMask(b.Dx(), b.Dy(), radius))
}

// applyMask returns img with every pixel scaled by the mask coverage. A nil
// mask copies img unchanged.
func applyMask(img *image.RGBA, mask *image.Alpha) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if mask == nil {
		draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
		return out
	}
	draw.DrawMask(out, out.Bounds(), img, b.Min, mask, mask.Bounds().Min, draw.Src)
	return out
}

// multiplyMasks combines two coverage masks of the same size. Either may be
// nil.
func multiplyMasks(a, b *image.Alpha) *image.Alpha {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	out := image.NewAlpha(a.Bounds())
	for i := range out.Pix {
		out.Pix[i] = uint8((uint32(a.Pix[i])*uint32(b.Pix[i]) + 127) / 255)
	}
	return out
}
