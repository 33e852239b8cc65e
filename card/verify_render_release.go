//go:build !verify_render
// +build !verify_render

package card

import "image"

// Empty stub that will be optimized out
func verifyComposite(g Geometry, out, refl *image.RGBA) {}
