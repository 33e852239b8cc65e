package card

import (
	"image"
)

// MirrorStrip returns the bottom size rows of img flipped vertically. size is
// clamped to the image height.
func MirrorStrip(img *image.RGBA, size int) *image.RGBA {
	b := img.Bounds()
	size = min(max(size, 0), b.Dy())
	strip := img.SubImage(image.Rect(b.Min.X, b.Max.Y-size, b.Max.X, b.Max.Y)).(*image.RGBA)
	return FlipVertical(strip)
}

// FlipVertical mirrors img across its horizontal axis. Applying it twice
// yields the original rows.
func FlipVertical(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	rowLen := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		src := img.PixOffset(b.Min.X, b.Max.Y-1-y)
		dst := out.PixOffset(0, y)
		copy(out.Pix[dst:dst+rowLen], img.Pix[src:src+rowLen])
	}
	return out
}
