package card

import (
	"image"
	"math"
)

// Geometry holds the layout of a single card in pixels.
type Geometry struct {
	ContentWidth   int
	ContentHeight  int
	ReflectionSize int
	// Elevation is the transparent gap between the card and its reflection.
	Elevation   int
	SidePadding int
	// CornerRadius is shared by the card and the reflection.
	CornerRadius float64
}

// Clamped returns a copy of g with every field forced into its valid range.
func (g Geometry) Clamped() Geometry {
	g.ContentWidth = max(g.ContentWidth, 0)
	g.ContentHeight = max(g.ContentHeight, 0)
	g.ReflectionSize = min(max(g.ReflectionSize, 0), g.ContentHeight)
	g.Elevation = max(g.Elevation, 0)
	g.SidePadding = min(max(g.SidePadding, 0), max((g.ContentWidth-1)/2, 0))
	if math.IsNaN(g.CornerRadius) || g.CornerRadius < 0 {
		g.CornerRadius = 0
	}
	return g
}

// OutputSize is the size of the composite produced by Render.
func (g Geometry) OutputSize() image.Point {
	g = g.Clamped()
	if g.ContentWidth == 0 || g.ContentHeight == 0 {
		return image.Point{}
	}
	return image.Pt(g.ContentWidth, g.ContentHeight+g.Elevation+g.ReflectionSize)
}

// CardRect is where the rounded card lands in the composite.
func (g Geometry) CardRect() image.Rectangle {
	g = g.Clamped()
	return image.Rect(0, 0, g.ContentWidth, g.ContentHeight)
}

// ReflectionRect is where the faded reflection lands in the composite.
func (g Geometry) ReflectionRect() image.Rectangle {
	g = g.Clamped()
	top := g.ContentHeight + g.Elevation
	return image.Rect(g.SidePadding, top, g.ContentWidth-g.SidePadding, top+g.ReflectionSize)
}

// clampRadius limits r to half of the smaller side.
func clampRadius(r float64, w, h int) float64 {
	if math.IsNaN(r) || r <= 0 || w <= 0 || h <= 0 {
		return 0
	}
	return math.Min(r, float64(min(w, h))/2)
}
