package fireworks

import (
	"image"
	"image/color"
)

// SketchPad is the secondary drawing surface. Pointer strokes are
// rasterized on the CPU into an RGBA image that Show.Capture samples.
type SketchPad struct {
	image  *image.RGBA
	raster rasterizer
	color  color.NRGBA
	half   float64

	drawing      bool
	lastX, lastY float64
	version      uint64
}

// NewSketchPad allocates a transparent w×h pad using the stroke settings of
// cfg (zero fields take defaults).
func NewSketchPad(w, h int, cfg Config) *SketchPad {
	cfg = cfg.withDefaults()
	return &SketchPad{
		image: image.NewRGBA(image.Rect(0, 0, w, h)),
		color: cfg.StrokeColor.toNRGBA(1),
		half:  cfg.StrokeWidth / 2,
	}
}

// Image returns the pad raster. It is mutated in place by strokes.
func (p *SketchPad) Image() *image.RGBA {
	return p.image
}

// Size returns the pad dimensions.
func (p *SketchPad) Size() (int, int) {
	b := p.image.Bounds()
	return b.Dx(), b.Dy()
}

// Version increases every time the raster changes. Hosts use it to know
// when to re-upload the pad texture.
func (p *SketchPad) Version() uint64 {
	return p.version
}

// Drawing reports whether a stroke is in progress.
func (p *SketchPad) Drawing() bool {
	return p.drawing
}

// PointerDown starts a stroke and stamps a dot at (x, y).
func (p *SketchPad) PointerDown(x, y float64) {
	p.drawing = true
	p.lastX, p.lastY = x, y
	p.raster.fillCircle(p.image, x, y, p.half, p.color)
	p.version++
}

// PointerMove extends the current stroke to (x, y). Ignored when no stroke
// is in progress.
func (p *SketchPad) PointerMove(x, y float64) {
	if !p.drawing {
		return
	}
	if x == p.lastX && y == p.lastY {
		return
	}
	p.raster.fillCapsule(p.image, p.lastX, p.lastY, x, y, p.half, p.color)
	p.lastX, p.lastY = x, y
	p.version++
}

// PointerUp ends the current stroke. The next stroke is not connected to it.
func (p *SketchPad) PointerUp() {
	p.drawing = false
}

// Clear erases the pad and ends any stroke in progress.
func (p *SketchPad) Clear() {
	clear(p.image.Pix)
	p.drawing = false
	p.version++
}

// Empty reports whether no pixel has ink.
func (p *SketchPad) Empty() bool {
	return !hasInk(p.image)
}
