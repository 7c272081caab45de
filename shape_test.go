package fireworks

import (
	"image"
	"image/color"
	"testing"
)

func TestEmissionShapeEmptyImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	s := NewEmissionShape(img, 2)
	if !s.Empty() {
		t.Fatal("fully transparent image should give an empty shape")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
	if pts := s.Points(10, 10); pts != nil {
		t.Errorf("Points = %v, want nil", pts)
	}
	minX, minY, maxX, maxY := s.Bounds()
	if minX != 0 || minY != 0 || maxX != 0 || maxY != 0 {
		t.Errorf("Bounds = (%d,%d,%d,%d), want zeros", minX, minY, maxX, maxY)
	}
}

func TestEmissionShapeNilIsEmpty(t *testing.T) {
	var s *EmissionShape
	if !s.Empty() || s.Len() != 0 {
		t.Error("nil shape should be empty")
	}
}

func TestEmissionShapeNilImage(t *testing.T) {
	var img *image.NRGBA
	if s := NewEmissionShape(img, 2); !s.Empty() || s.Len() != 0 {
		t.Error("nil *image.NRGBA should give an empty shape")
	}
	if s := NewEmissionShape(nil, 2); !s.Empty() {
		t.Error("nil image should give an empty shape")
	}
}

func TestEmissionShapeBoundingBox(t *testing.T) {
	img := newInkedImage(100, 50, 10, 5, 20, 9)
	s := NewEmissionShape(img, 2)
	minX, minY, maxX, maxY := s.Bounds()
	if minX != 10 || minY != 5 || maxX != 20 || maxY != 9 {
		t.Errorf("Bounds = (%d,%d,%d,%d), want (10,5,20,9)", minX, minY, maxX, maxY)
	}
}

func TestEmissionShapeStrideSampling(t *testing.T) {
	img := newInkedImage(100, 50, 10, 5, 20, 9)

	// x: 10,12,14,16,18 (max column excluded); y: 5,7 (max row excluded).
	s := NewEmissionShape(img, 2)
	if s.Len() != 10 {
		t.Errorf("stride 2 Len = %d, want 10", s.Len())
	}

	// x: 10..19, y: 5..8.
	s1 := NewEmissionShape(img, 1)
	if s1.Len() != 40 {
		t.Errorf("stride 1 Len = %d, want 40", s1.Len())
	}
}

func TestEmissionShapePointsTranslation(t *testing.T) {
	img := newInkedImage(100, 50, 10, 5, 20, 9)
	s := NewEmissionShape(img, 2)
	pts := s.Points(100, 100)
	if len(pts) != 10 {
		t.Fatalf("len(points) = %d, want 10", len(pts))
	}
	// offset = (100 - 10/2, 100 - 4/2) = (95, 98).
	assertNear(t, "first.X", pts[0].X, 95)
	assertNear(t, "first.Y", pts[0].Y, 98)
	assertNear(t, "second.X", pts[1].X, 97)
	assertNear(t, "second.Y", pts[1].Y, 98)
	last := pts[len(pts)-1]
	assertNear(t, "last.X", last.X, 103)
	assertNear(t, "last.Y", last.Y, 100)
}

// The origin subtracts half the box span from the detonation point, so the
// full box maps onto [cx-w/2, cx+w/2]. Because the max row and column are
// never sampled, the sampled cloud sits slightly toward the min side. This
// test pins that arithmetic.
func TestEmissionShapeCenteringArithmetic(t *testing.T) {
	img := newInkedImage(200, 200, 40, 60, 80, 70)
	s := NewEmissionShape(img, 2)
	o := s.Origin(500, 300)
	assertNear(t, "origin.X", o.X, 480)
	assertNear(t, "origin.Y", o.Y, 295)

	var sx, sy float64
	pts := s.Points(500, 300)
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	cx, cy := sx/float64(len(pts)), sy/float64(len(pts))
	if cx >= 500 || cy >= 300 {
		t.Errorf("sampled centroid (%v, %v) expected left/up of (500, 300)", cx, cy)
	}
}

func TestEmissionShapeSinglePixelHasNoSamples(t *testing.T) {
	img := newInkedImage(10, 10, 4, 4, 4, 4)
	s := NewEmissionShape(img, 2)
	if s.Empty() {
		t.Fatal("single inked pixel should not be empty")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0 (max row and column are excluded)", s.Len())
	}
}

func TestEmissionShapeSkipsTransparentHoles(t *testing.T) {
	// Two dots at the corners of the box; the interior is transparent.
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	img.Set(2, 2, color.NRGBA{255, 0, 0, 255})
	img.Set(12, 12, color.NRGBA{255, 0, 0, 1})
	s := NewEmissionShape(img, 2)
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1 (only the min corner is sampled)", s.Len())
	}
}

func TestEmissionShapeGenericImage(t *testing.T) {
	pal := color.Palette{color.Transparent, color.White}
	img := image.NewPaletted(image.Rect(0, 0, 10, 10), pal)
	for y := 2; y <= 6; y++ {
		for x := 2; x <= 6; x++ {
			img.SetColorIndex(x, y, 1)
		}
	}
	s := NewEmissionShape(img, 2)
	// x: 2,4 ; y: 2,4.
	if s.Len() != 4 {
		t.Errorf("Len = %d, want 4", s.Len())
	}
}

func TestEmissionShapeSubImage(t *testing.T) {
	full := newInkedImage(100, 100, 50, 50, 54, 54)
	sub := full.SubImage(image.Rect(40, 40, 80, 80))
	s := NewEmissionShape(sub, 2)
	minX, minY, _, _ := s.Bounds()
	if minX != 50 || minY != 50 {
		t.Errorf("Bounds min = (%d,%d), want (50,50)", minX, minY)
	}
	if s.Len() != 4 {
		t.Errorf("Len = %d, want 4", s.Len())
	}
}

func TestEmissionShapeStrideClampedToOne(t *testing.T) {
	img := newInkedImage(10, 10, 0, 0, 3, 3)
	s := NewEmissionShape(img, 0)
	if s.Stride() != 1 {
		t.Errorf("Stride = %d, want 1", s.Stride())
	}
}

func TestHasInk(t *testing.T) {
	if hasInk(image.NewRGBA(image.Rect(0, 0, 8, 8))) {
		t.Error("empty RGBA should have no ink")
	}
	if !hasInk(newInkedImage(8, 8, 7, 7, 7, 7)) {
		t.Error("corner pixel should count as ink")
	}
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 2, color.NRGBA{0, 0, 0, 1})
	if !hasInk(img) {
		t.Error("alpha 1 should count as ink")
	}
}
