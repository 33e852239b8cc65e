//go:build verify_render
// +build verify_render

package card

import (
	"fmt"
	"image"
)

func init() {
	fmt.Println("Render verification enabled.")
}

func verifyComposite(g Geometry, out, refl *image.RGBA) {
	if got, want := out.Bounds().Size(), g.OutputSize(); got != want {
		panic(fmt.Sprintf("composite is %v, expected %v", got, want))
	}
	if refl == nil {
		return
	}
	if refl.Bounds().Dy() > g.ContentHeight {
		panic("reflection strip is taller than the card")
	}
	if refl.Bounds().Size() != g.ReflectionRect().Size() {
		panic("reflection strip does not match its slot")
	}
}
