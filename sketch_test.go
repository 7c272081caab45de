package fireworks

import "testing"

func TestSketchPadStartsEmpty(t *testing.T) {
	p := NewSketchPad(120, 80, Config{})
	if !p.Empty() {
		t.Error("new pad should be empty")
	}
	if w, h := p.Size(); w != 120 || h != 80 {
		t.Errorf("Size = %dx%d, want 120x80", w, h)
	}
}

func TestSketchPadDot(t *testing.T) {
	p := NewSketchPad(100, 100, Config{})
	p.PointerDown(40, 40)
	if !p.Drawing() {
		t.Error("Drawing should be true after PointerDown")
	}
	if padAlpha(p, 40, 40) == 0 {
		t.Error("no ink under the pen")
	}
	if padAlpha(p, 50, 40) != 0 {
		t.Error("dot wider than the stroke width")
	}
	c := p.Image().RGBAAt(40, 40)
	if c.A < 250 || c.R < 125 || c.R > 129 || c.R != c.G || c.G != c.B {
		t.Errorf("pen color = %v, want opaque gray", c)
	}
}

func TestSketchPadStroke(t *testing.T) {
	p := NewSketchPad(100, 100, Config{})
	p.PointerDown(10, 50)
	p.PointerMove(90, 50)
	p.PointerUp()
	for x := 10; x < 90; x += 5 {
		if padAlpha(p, x, 50) == 0 {
			t.Fatalf("no ink at (%d, 50)", x)
		}
	}
	if padAlpha(p, 50, 55) != 0 {
		t.Error("stroke thicker than the pen")
	}
	if padAlpha(p, 50, 20) != 0 {
		t.Error("ink far from the stroke")
	}
}

func TestSketchPadDiagonalStroke(t *testing.T) {
	p := NewSketchPad(100, 100, Config{})
	p.PointerDown(10, 10)
	p.PointerMove(80, 80)
	if padAlpha(p, 45, 45) == 0 {
		t.Error("no ink on the diagonal")
	}
	if padAlpha(p, 80, 10) != 0 {
		t.Error("ink off the diagonal")
	}
}

func TestSketchPadMoveWithoutPressIgnored(t *testing.T) {
	p := NewSketchPad(100, 100, Config{})
	v := p.Version()
	p.PointerMove(50, 50)
	if !p.Empty() || p.Version() != v {
		t.Error("move without press changed the pad")
	}
}

func TestSketchPadClear(t *testing.T) {
	p := NewSketchPad(100, 100, Config{})
	p.PointerDown(10, 10)
	p.PointerMove(60, 60)
	v := p.Version()
	p.Clear()
	if !p.Empty() {
		t.Error("pad not empty after Clear")
	}
	if p.Drawing() {
		t.Error("Clear should end the stroke")
	}
	if p.Version() <= v {
		t.Error("Clear should bump the version")
	}
}

func TestSketchPadStrokeWidth(t *testing.T) {
	p := NewSketchPad(100, 100, Config{StrokeWidth: 20})
	p.PointerDown(50, 50)
	if padAlpha(p, 57, 50) == 0 {
		t.Error("wide pen left no ink 7px from center")
	}
}

func TestSketchPadClipsAtEdges(t *testing.T) {
	p := NewSketchPad(50, 50, Config{})
	p.PointerDown(-10, 25)
	p.PointerMove(60, 25)
	if padAlpha(p, 0, 25) == 0 || padAlpha(p, 49, 25) == 0 {
		t.Error("stroke crossing the pad should ink both edges")
	}
}
