package card

import (
	"image"
	"image/draw"
	"time"
)

// Render composites src into a rounded card with a blurred, faded reflection
// underneath. The result is ContentWidth wide and
// ContentHeight+Elevation+ReflectionSize tall. An absent or empty source
// yields a fully transparent image of that size; a card without area yields
// an empty image.
func Render(src image.Image, g Geometry, s Style) *image.RGBA {
	start := time.Now()
	g = g.Clamped()
	size := g.OutputSize()
	out := image.NewRGBA(image.Rectangle{Max: size})
	if size.X == 0 || size.Y == 0 {
		return out
	}
	if isEmpty(src) {
		Logger().Debug("no source image, rendering transparent card", "size", size)
		return out
	}

	cropped := CenterCrop(src, g.ContentWidth, g.ContentHeight)
	draw.Draw(out, g.CardRect(), RoundCorners(cropped, g.CornerRadius), image.Point{}, draw.Src)

	var refl *image.RGBA
	if g.ReflectionSize > 0 {
		refl = reflection(cropped, g, s)
		draw.Draw(out, g.ReflectionRect(), refl, image.Point{}, draw.Src)
	}

	verifyComposite(g, out, refl)
	Logger().Debug("rendered card",
		"width", size.X,
		"height", size.Y,
		"reflection", g.ReflectionSize,
		"elapsed", time.Since(start))
	return out
}

// reflection builds the faded strip placed under the card.
func reflection(cropped *image.RGBA, g Geometry, s Style) *image.RGBA {
	strip := MirrorStrip(cropped, g.ReflectionSize)
	if r := g.ReflectionRect(); r.Dx() != strip.Bounds().Dx() {
		strip = resize(strip, r.Dx(), r.Dy())
	}
	strip = BlurStrip(strip, s.Blur)
	return Fade(strip, s.Gradient, g.CornerRadius)
}
