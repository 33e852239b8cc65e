package card

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
	xdraw "golang.org/x/image/draw"
)

const defaultDownscale = 0.4

// Clamped returns p with a non-negative radius and a downscale factor in
// (0, 1]. A zero or invalid downscale falls back to 0.4.
func (p BlurParams) Clamped() BlurParams {
	if math.IsNaN(p.Radius) || p.Radius < 0 {
		p.Radius = 0
	}
	if math.IsNaN(p.Downscale) || p.Downscale <= 0 {
		p.Downscale = defaultDownscale
	}
	p.Downscale = math.Min(p.Downscale, 1)
	return p
}

// BlurStrip approximates a large Gaussian blur by shrinking img, blurring the
// small copy and scaling it back to the original size.
func BlurStrip(img *image.RGBA, p BlurParams) *image.RGBA {
	p = p.Clamped()
	b := img.Bounds()
	if p.Radius == 0 || b.Empty() {
		return applyMask(img, nil)
	}

	small := resize(img,
		max(int(math.Round(float64(b.Dx())*p.Downscale)), 1),
		max(int(math.Round(float64(b.Dy())*p.Downscale)), 1))
	blurred := blur.Gaussian(small, p.Radius)
	return resize(blurred, b.Dx(), b.Dy())
}

func resize(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
