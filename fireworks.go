package fireworks

import (
	"image/color"
	"math"

	"github.com/crazy3lf/colorconv"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color reaches a drawing backend.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is an opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorGray matches the stroke color used by the sketch pad.
var ColorGray = Color{128.0 / 255, 128.0 / 255, 128.0 / 255, 1}

// ColorFromHSL converts hue (degrees, [0, 360)), saturation and lightness
// (both [0, 1]) to an opaque Color. Out-of-range hues wrap; saturation and
// lightness are clamped.
func ColorFromHSL(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	r, g, b, err := colorconv.HSLToRGB(h, clamp01(s), clamp01(l))
	if err != nil {
		return ColorWhite
	}
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// toNRGBA converts to a straight-alpha 8-bit color, scaling A by alpha.
func (c Color) toNRGBA(alpha float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A*alpha)*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions, velocities and emission points.
type Vec2 struct {
	X, Y float64
}

// Len returns the vector magnitude.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Range is a general-purpose min/max range sampled uniformly.
type Range struct {
	Min, Max float64
}

// Random returns a value in [Min, Max) drawn from src. When Min == Max no
// draw is consumed.
func (r Range) Random(src Source) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + src.Float64()*(r.Max-r.Min)
}

// State is the lifecycle stage of a Firework.
type State uint8

const (
	StateAscending State = iota // shell is rising
	StateDetonated              // particles spawned; only decays from here
)

func (s State) String() string {
	switch s {
	case StateAscending:
		return "ascending"
	case StateDetonated:
		return "detonated"
	default:
		return "unknown"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
