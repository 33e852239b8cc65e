package card

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlurParamsClamped(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(BlurParams{Radius: 0, Downscale: 0.4}, BlurParams{Radius: -2}.Clamped())
	assert.Equal(BlurParams{Radius: 3, Downscale: 1}, BlurParams{Radius: 3, Downscale: 7}.Clamped())
	assert.Equal(0.4, BlurParams{Downscale: math.NaN()}.Clamped().Downscale)
}

func TestBlurStripKeepsSize(t *testing.T) {
	assert := assert.New(t)
	for _, p := range []BlurParams{{8, 0.4}, {8, 0.33}, {2, 1}, {30, 0.01}} {
		out := BlurStrip(rowRamp(97, 31), p)
		assert.Equal(image.Pt(97, 31), out.Bounds().Size(), "%+v", p)
	}
}

func TestBlurStripUniform(t *testing.T) {
	assert := assert.New(t)
	out := BlurStrip(solid(60, 20, red), BlurParams{Radius: 8, Downscale: 0.33})
	for _, pt := range []image.Point{{0, 0}, {30, 10}, {59, 19}} {
		c := out.RGBAAt(pt.X, pt.Y)
		assert.LessOrEqual(absDiff(c.R, 255), 1)
		assert.LessOrEqual(absDiff(c.A, 255), 1)
		assert.Equal(uint8(0), c.G)
	}
}

func TestBlurStripSmooths(t *testing.T) {
	assert := assert.New(t)
	img := solid(40, 40, red)
	for y := 20; y < 40; y++ {
		for x := 0; x < 40; x++ {
			img.Pix[img.PixOffset(x, y)] = 0
		}
	}
	out := BlurStrip(img, BlurParams{Radius: 4, Downscale: 0.5})
	// The hard edge at row 20 becomes a ramp.
	edge := out.RGBAAt(20, 20).R
	assert.Greater(edge, uint8(10))
	assert.Less(edge, uint8(245))
}

func TestBlurStripZeroRadiusCopies(t *testing.T) {
	assert := assert.New(t)
	img := rowRamp(5, 5)
	assert.Equal(img.Pix, BlurStrip(img, BlurParams{}).Pix)
}
