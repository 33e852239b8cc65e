package card

import (
	"context"
	"image"
	"image/draw"
	"sync"
	"sync/atomic"
)

// Attributes are the style attributes a host container resolves once for a
// card view.
type Attributes struct {
	ReflectionSize int
	Elevation      int
	SidePadding    int
	CornerRadius   float64
}

// LayoutFor derives the card geometry from the container's measured size:
// the card takes the full width and whatever height is left after the gap
// and the reflection.
func LayoutFor(width, height int, a Attributes) Geometry {
	return Geometry{
		ContentWidth:   width,
		ContentHeight:  height - a.ReflectionSize - a.Elevation,
		ReflectionSize: a.ReflectionSize,
		Elevation:      a.Elevation,
		SidePadding:    a.SidePadding,
		CornerRadius:   a.CornerRadius,
	}.Clamped()
}

// Future is the pending result of a render started by a View trigger.
type Future struct {
	done chan struct{}
	img  *image.RGBA
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func (f *Future) resolve(img *image.RGBA) {
	f.img = img
	close(f.done)
}

// Done is closed once the render finished.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the render finishes or ctx is done. The returned image is
// the one this trigger produced, which is nil when the view had no image. It
// may have been superseded by a later trigger; View.Current is what is shown.
func (f *Future) Wait(ctx context.Context) (*image.RGBA, error) {
	select {
	case <-f.done:
		return f.img, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// View is a host-independent card widget. Every change to its image, size or
// style is a render trigger: the composite is rebuilt in the background and
// swapped in atomically once done. Renders are published in trigger order, so
// a slow early render can never replace the result of a later trigger.
type View struct {
	attrs      Attributes
	invalidate func()

	mu        sync.Mutex
	style     Style
	source    image.Image
	width     int
	height    int
	issued    uint64
	published uint64

	current atomic.Pointer[image.RGBA]
}

type ViewOption func(*View)

// WithSize sets the initial measured size of the container.
func WithSize(width, height int) ViewOption {
	return func(v *View) {
		v.width, v.height = width, height
	}
}

// WithInvalidate registers a callback run after a new composite is published.
// The host reads the composite with Current or Draw.
func WithInvalidate(fn func()) ViewOption {
	return func(v *View) {
		v.invalidate = fn
	}
}

func NewView(a Attributes, s Style, opts ...ViewOption) *View {
	v := &View{attrs: a, style: s}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetImage replaces the source artwork. A nil image clears the card.
func (v *View) SetImage(img image.Image) *Future {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.source = img
	return v.triggerLocked()
}

// SetImageFile loads the artwork from path. An unreadable file leaves the view
// without an image instead of failing.
func (v *View) SetImageFile(path string) *Future {
	img, err := LoadImage(path)
	if err != nil {
		Logger().Warn("could not load card image", "path", path, "err", err)
		img = nil
	}
	return v.SetImage(img)
}

// Resize updates the measured container size.
func (v *View) Resize(width, height int) *Future {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.width, v.height = width, height
	return v.triggerLocked()
}

// SetStyle replaces the gradient and blur settings.
func (v *View) SetStyle(s Style) *Future {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.style = s
	return v.triggerLocked()
}

// Geometry is the layout the next render will use.
func (v *View) Geometry() Geometry {
	v.mu.Lock()
	defer v.mu.Unlock()
	return LayoutFor(v.width, v.height, v.attrs)
}

// Current returns the composite on display, or nil when there is none.
func (v *View) Current() *image.RGBA {
	return v.current.Load()
}

// Draw paints the current composite onto dst at the given offset. It is a
// no-op while the view has nothing to show.
func (v *View) Draw(dst draw.Image, at image.Point) {
	img := v.Current()
	if img == nil {
		return
	}
	draw.Draw(dst, img.Bounds().Add(at), img, image.Point{}, draw.Over)
}

func (v *View) triggerLocked() *Future {
	v.issued++
	gen := v.issued
	src, g, s := v.source, LayoutFor(v.width, v.height, v.attrs), v.style

	f := newFuture()
	go func() {
		var img *image.RGBA
		if !isEmpty(src) {
			img = Render(src, g, s)
		}
		v.publish(gen, img)
		f.resolve(img)
	}()
	return f
}

func (v *View) publish(gen uint64, img *image.RGBA) {
	v.mu.Lock()
	if gen <= v.published {
		v.mu.Unlock()
		Logger().Debug("dropping superseded render", "generation", gen)
		return
	}
	v.published = gen
	v.current.Store(img)
	v.mu.Unlock()

	if v.invalidate != nil {
		v.invalidate()
	}
}
