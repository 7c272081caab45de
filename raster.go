package fireworks

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// kappa is the cubic Bézier control distance for a quarter circle of radius 1.
const kappa = 0.5522847498

// rasterizer fills discs and round-capped segments into an *image.RGBA on the
// CPU. The mask is sized to each shape's bounding box so small shapes stay
// cheap on large images.
type rasterizer struct {
	z vector.Rasterizer
}

// fillCircle composites a disc of color c (source-over) into dst.
func (r *rasterizer) fillCircle(dst *image.RGBA, cx, cy, radius float64, c color.NRGBA) {
	box, ok := shapeBox(dst.Bounds(), cx, cy, cx, cy, radius)
	if !ok {
		return
	}
	r.z.Reset(box.Dx(), box.Dy())
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	circlePath(&r.z, cx-ox, cy-oy, radius)
	r.z.Draw(dst, box, image.NewUniform(c), image.Point{})
}

// fillCapsule composites the segment (ax, ay)-(bx, by) stroked with the given
// half width and round caps into dst.
func (r *rasterizer) fillCapsule(dst *image.RGBA, ax, ay, bx, by, halfWidth float64, c color.NRGBA) {
	dx, dy := bx-ax, by-ay
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		r.fillCircle(dst, ax, ay, halfWidth, c)
		return
	}
	box, ok := shapeBox(dst.Bounds(), ax, ay, bx, by, halfWidth)
	if !ok {
		return
	}
	r.z.Reset(box.Dx(), box.Dy())
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	ax, ay, bx, by = ax-ox, ay-oy, bx-ox, by-oy

	// Unit direction d and unit normal n.
	ux, uy := dx/length, dy/length
	nx, ny := -uy, ux
	h := halfWidth

	z := &r.z
	z.MoveTo(float32(ax+nx*h), float32(ay+ny*h))
	z.LineTo(float32(bx+nx*h), float32(by+ny*h))
	quarterArc(z, bx, by, h, nx, ny, ux, uy)
	quarterArc(z, bx, by, h, ux, uy, -nx, -ny)
	z.LineTo(float32(ax-nx*h), float32(ay-ny*h))
	quarterArc(z, ax, ay, h, -nx, -ny, -ux, -uy)
	quarterArc(z, ax, ay, h, -ux, -uy, nx, ny)
	z.ClosePath()

	z.Draw(dst, box, image.NewUniform(c), image.Point{})
}

// circlePath appends a closed circle to z.
func circlePath(z *vector.Rasterizer, cx, cy, radius float64) {
	z.MoveTo(float32(cx+radius), float32(cy))
	quarterArc(z, cx, cy, radius, 1, 0, 0, 1)
	quarterArc(z, cx, cy, radius, 0, 1, -1, 0)
	quarterArc(z, cx, cy, radius, -1, 0, 0, -1)
	quarterArc(z, cx, cy, radius, 0, -1, 1, 0)
	z.ClosePath()
}

// quarterArc appends a cubic approximating the quarter circle around (cx, cy)
// from direction (ux, uy) to direction (vx, vy). The pen must already sit at
// the arc start.
func quarterArc(z *vector.Rasterizer, cx, cy, radius, ux, uy, vx, vy float64) {
	k := kappa * radius
	p1x, p1y := cx+ux*radius+vx*k, cy+uy*radius+vy*k
	p2x, p2y := cx+vx*radius+ux*k, cy+vy*radius+uy*k
	p3x, p3y := cx+vx*radius, cy+vy*radius
	z.CubeTo(float32(p1x), float32(p1y), float32(p2x), float32(p2y), float32(p3x), float32(p3y))
}

// shapeBox returns the pixel rectangle covering the segment (ax, ay)-(bx, by)
// grown by pad, clipped to bounds.
func shapeBox(bounds image.Rectangle, ax, ay, bx, by, pad float64) (image.Rectangle, bool) {
	minX := int(math.Floor(math.Min(ax, bx)-pad)) - 1
	minY := int(math.Floor(math.Min(ay, by)-pad)) - 1
	maxX := int(math.Ceil(math.Max(ax, bx)+pad)) + 1
	maxY := int(math.Ceil(math.Max(ay, by)+pad)) + 1
	box := image.Rect(minX, minY, maxX, maxY).Intersect(bounds)
	return box, !box.Empty()
}
