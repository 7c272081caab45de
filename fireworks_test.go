package fireworks

import (
	"math"
	"testing"
)

func TestColorFromHSL(t *testing.T) {
	red := ColorFromHSL(0, 1, 0.5)
	assertNear(t, "red.R", red.R, 1)
	assertNear(t, "red.G", red.G, 0)
	assertNear(t, "red.B", red.B, 0)
	assertNear(t, "red.A", red.A, 1)

	if ColorFromHSL(360, 1, 0.5) != red {
		t.Error("hue 360 should wrap to 0")
	}
	if ColorFromHSL(-360, 1, 0.5) != red {
		t.Error("hue -360 should wrap to 0")
	}

	gray := ColorFromHSL(200, 0, 0.5)
	if math.Abs(gray.R-gray.G) > 1.0/255 || math.Abs(gray.G-gray.B) > 1.0/255 {
		t.Errorf("zero saturation = %+v, want gray", gray)
	}
}

func TestColorToNRGBA(t *testing.T) {
	c := Color{1, 0.5, 0, 1}.toNRGBA(0.5)
	if c.R != 255 || c.G != 128 || c.B != 0 || c.A != 128 {
		t.Errorf("toNRGBA = %v, want {255 128 0 128}", c)
	}
	if c := ColorWhite.toNRGBA(2); c.A != 255 {
		t.Errorf("alpha not clamped: %v", c)
	}
}

func TestRangeRandom(t *testing.T) {
	r := Range{Min: -6, Max: 6}
	assertNear(t, "low", r.Random(constSource(0)), -6)
	assertNear(t, "mid", r.Random(constSource(0.5)), 0)

	src := &seqSource{vals: []float64{0.25, 0.75}}
	fixed := Range{Min: 3, Max: 3}
	assertNear(t, "fixed", fixed.Random(src), 3)
	if src.i != 0 {
		t.Error("degenerate range consumed a draw")
	}
}

func TestVec2Len(t *testing.T) {
	assertNear(t, "len", Vec2{3, 4}.Len(), 5)
}

func TestStateString(t *testing.T) {
	if StateAscending.String() != "ascending" || StateDetonated.String() != "detonated" {
		t.Error("unexpected state names")
	}
	if State(9).String() != "unknown" {
		t.Error("unknown state should say so")
	}
}

func TestSeededSourceReproducible(t *testing.T) {
	a, b := NewSeededSource(42), NewSeededSource(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("draw %d differs between equal seeds", i)
		}
	}
	v := DefaultSource().Float64()
	if v < 0 || v >= 1 {
		t.Errorf("DefaultSource drew %v", v)
	}
}

func TestMultiSink(t *testing.T) {
	var a, b []EventType
	sink := MultiSink{
		EventSinkFunc(func(e ShowEvent) { a = append(a, e.Type) }),
		nil,
		EventSinkFunc(func(e ShowEvent) { b = append(b, e.Type) }),
	}
	sink.EmitEvent(ShowEvent{Type: EventDetonate})
	if len(a) != 1 || len(b) != 1 || a[0] != EventDetonate || b[0] != EventDetonate {
		t.Errorf("fan-out failed: a=%v b=%v", a, b)
	}
	if EventShapeCleared.String() != "shape-cleared" {
		t.Errorf("EventShapeCleared = %q", EventShapeCleared.String())
	}
}
