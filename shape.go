package fireworks

import "image"

// EmissionShape is a sampled snapshot of a sketched raster. It remembers the
// occupied bounding box and the stride-sampled occupied pixels relative to
// the box origin; Points translates them onto a detonation point.
type EmissionShape struct {
	minX, minY int
	maxX, maxY int
	offsets    []Vec2
	stride     int
	empty      bool
}

// NewEmissionShape scans img once. A pixel is occupied when its alpha is
// nonzero. A nil image, or one without occupied pixels, yields an empty shape
// rather than an inverted bounding box.
func NewEmissionShape(img image.Image, stride int) *EmissionShape {
	if stride < 1 {
		stride = 1
	}
	s := &EmissionShape{stride: stride}
	if isNilImage(img) {
		s.empty = true
		return s
	}
	alpha := alphaReader(img)
	b := img.Bounds()

	s.minX, s.minY = b.Max.X, b.Max.Y
	s.maxX, s.maxY = b.Min.X-1, b.Min.Y-1
	found := false
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if alpha(x, y) == 0 {
				continue
			}
			found = true
			s.minX = min(s.minX, x)
			s.maxX = max(s.maxX, x)
			s.minY = min(s.minY, y)
			s.maxY = max(s.maxY, y)
		}
	}
	if !found {
		s.empty = true
		s.minX, s.minY, s.maxX, s.maxY = 0, 0, 0, 0
		return s
	}

	// The max row and column are excluded from sampling.
	for y := s.minY; y < s.maxY; y += stride {
		for x := s.minX; x < s.maxX; x += stride {
			if alpha(x, y) != 0 {
				s.offsets = append(s.offsets, Vec2{X: float64(x - s.minX), Y: float64(y - s.minY)})
			}
		}
	}
	return s
}

// Empty reports whether the scanned raster had no occupied pixel. Callers
// fall back to the radial burst.
func (s *EmissionShape) Empty() bool {
	return s == nil || s.empty
}

// Bounds returns the inclusive occupied bounding box as (minX, minY, maxX, maxY).
// All zero for an empty shape.
func (s *EmissionShape) Bounds() (minX, minY, maxX, maxY int) {
	if s.Empty() {
		return 0, 0, 0, 0
	}
	return s.minX, s.minY, s.maxX, s.maxY
}

// Len returns the number of emission points Points would produce.
func (s *EmissionShape) Len() int {
	if s.Empty() {
		return 0
	}
	return len(s.offsets)
}

// Stride returns the sampling step used when the shape was built.
func (s *EmissionShape) Stride() int {
	return s.stride
}

// Origin returns the point that box-relative offsets are added to when the
// shape detonates at (cx, cy). Half the box width and height are subtracted
// from the detonation point.
func (s *EmissionShape) Origin(cx, cy float64) Vec2 {
	if s.Empty() {
		return Vec2{X: cx, Y: cy}
	}
	return Vec2{
		X: cx - float64(s.maxX-s.minX)/2,
		Y: cy - float64(s.maxY-s.minY)/2,
	}
}

// Points returns the emission points for a detonation at (cx, cy), in
// row-major sampling order. The returned slice is freshly allocated.
func (s *EmissionShape) Points(cx, cy float64) []Vec2 {
	if s.Empty() {
		return nil
	}
	o := s.Origin(cx, cy)
	pts := make([]Vec2, len(s.offsets))
	for i, off := range s.offsets {
		pts[i] = Vec2{X: o.X + off.X, Y: o.Y + off.Y}
	}
	return pts
}

// hasInk reports whether any pixel of img has nonzero alpha.
func hasInk(img image.Image) bool {
	switch m := img.(type) {
	case *image.RGBA:
		return anyAlpha(m.Pix, m.Stride, m.Rect)
	case *image.NRGBA:
		return anyAlpha(m.Pix, m.Stride, m.Rect)
	}
	b := img.Bounds()
	alpha := alphaReader(img)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if alpha(x, y) != 0 {
				return true
			}
		}
	}
	return false
}

func anyAlpha(pix []uint8, stride int, r image.Rectangle) bool {
	w := r.Dx() * 4
	for y := 0; y < r.Dy(); y++ {
		row := pix[y*stride : y*stride+w]
		for i := 3; i < len(row); i += 4 {
			if row[i] != 0 {
				return true
			}
		}
	}
	return false
}

// alphaReader returns a fast alpha accessor for the common RGBA layouts and
// falls back to the color model otherwise.
func alphaReader(img image.Image) func(x, y int) uint32 {
	switch m := img.(type) {
	case *image.RGBA:
		return func(x, y int) uint32 { return uint32(m.Pix[m.PixOffset(x, y)+3]) }
	case *image.NRGBA:
		return func(x, y int) uint32 { return uint32(m.Pix[m.PixOffset(x, y)+3]) }
	case *image.Alpha:
		return func(x, y int) uint32 { return uint32(m.Pix[m.PixOffset(x, y)]) }
	}
	return func(x, y int) uint32 {
		_, _, _, a := img.At(x, y).RGBA()
		return a
	}
}
