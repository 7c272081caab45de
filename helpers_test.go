package fireworks

import (
	"image"
	"image/color"
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// seqSource replays vals in order and then repeats the last value.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	if s.i >= len(s.vals) {
		return s.vals[len(s.vals)-1]
	}
	v := s.vals[s.i]
	s.i++
	return v
}

// constSource always returns v.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

type circleCall struct {
	x, y, r float64
	c       Color
	alpha   float64
}

// recordingSurface records every draw call.
type recordingSurface struct {
	w, h    int
	clears  int
	circles []circleCall
}

func newRecordingSurface(w, h int) *recordingSurface {
	return &recordingSurface{w: w, h: h}
}

func (s *recordingSurface) Clear() {
	s.clears++
	s.circles = s.circles[:0]
}

func (s *recordingSurface) FillCircle(x, y, r float64, c Color, alpha float64) {
	s.circles = append(s.circles, circleCall{x, y, r, c, alpha})
}

func (s *recordingSurface) Size() (int, int) { return s.w, s.h }

// quietConfig disables automatic launches and the detonation flash.
func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.SpawnChance = -1
	cfg.FlashFrames = -1
	return cfg
}

// newInkedImage returns a w×h transparent image with the inclusive
// rectangle [x0, x1]×[y0, y1] painted opaque.
func newInkedImage(w, h, x0, y0, x1, y1 int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			img.Set(x, y, color.RGBA{128, 128, 128, 255})
		}
	}
	return img
}
