package card

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// CenterCrop scales src to fill a w x h rectangle, trimming the longer
// dimension equally on both sides. Sources smaller than the target are
// upscaled, so the crop window never exceeds the source bounds.
func CenterCrop(src image.Image, w, h int) *image.RGBA {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if isEmpty(src) {
		return dst
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, cropWindow(src.Bounds(), w, h), xdraw.Src, nil)
	return dst
}

// cropWindow returns the largest centered rectangle inside b with the aspect
// ratio w:h.
func cropWindow(b image.Rectangle, w, h int) image.Rectangle {
	sw, sh := b.Dx(), b.Dy()
	cw, ch := sw, sh
	// Compare sw/sh with w/h without dividing.
	if sw*h > sh*w {
		cw = max(sh*w/h, 1)
	} else {
		ch = max(sw*h/w, 1)
	}
	x0 := b.Min.X + (sw-cw)/2
	y0 := b.Min.Y + (sh-ch)/2
	return image.Rect(x0, y0, x0+cw, y0+ch)
}

func isEmpty(img image.Image) bool {
	return img == nil || img.Bounds().Empty()
}
