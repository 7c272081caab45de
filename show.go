package fireworks

import (
	"fmt"
	"image"
	"io"
	"os"
	"reflect"
	"time"
)

// Show owns one independent firework simulation: the live fireworks in
// launch order, the shape-mode flag and the captured shape snapshot. It is
// not safe for concurrent use; call Step once per frame from one goroutine.
type Show struct {
	cfg    Config
	src    Source
	sink   EventSink
	width  float64
	height float64

	fireworks []*Firework
	shape     *EmissionShape
	nextID    uint64
	steps     uint64

	debug    bool
	debugOut io.Writer
}

// NewShow creates a show for a width×height primary surface. Zero config
// fields take their defaults. A nil src uses DefaultSource.
func NewShow(cfg Config, width, height int, src Source) (*Show, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: surface size %dx%d", ErrInvalidConfig, width, height)
	}
	if src == nil {
		src = DefaultSource()
	}
	return &Show{
		cfg:      cfg.withDefaults(),
		src:      src,
		width:    float64(width),
		height:   float64(height),
		debugOut: os.Stderr,
	}, nil
}

// Config returns the effective configuration.
func (s *Show) Config() Config {
	return s.cfg
}

// SetEventSink installs the receiver for launch, detonation, retire and
// shape events. nil disables events.
func (s *Show) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables per-step statistics on stderr.
func (s *Show) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Resize changes the launch area. Live fireworks keep their positions.
func (s *Show) Resize(width, height int) {
	if width > 0 {
		s.width = float64(width)
	}
	if height > 0 {
		s.height = float64(height)
	}
}

// Size returns the launch area dimensions.
func (s *Show) Size() (int, int) {
	return int(s.width), int(s.height)
}

// Fireworks returns the live fireworks in launch order. The returned slice
// MUST NOT be mutated.
func (s *Show) Fireworks() []*Firework {
	return s.fireworks
}

// Len returns the number of live fireworks.
func (s *Show) Len() int {
	return len(s.fireworks)
}

// Steps returns the number of completed steps.
func (s *Show) Steps() uint64 {
	return s.steps
}

// ShapeMode reports whether detonations use the captured sketch.
func (s *Show) ShapeMode() bool {
	return !s.shape.Empty()
}

// Shape returns the captured shape, or nil when shape mode is off.
func (s *Show) Shape() *EmissionShape {
	if s.shape.Empty() {
		return nil
	}
	return s.shape
}

// Capture snapshots img as the emission shape. If any pixel has nonzero
// alpha, shape mode is switched on and true is returned; otherwise shape
// mode is switched off. The image is scanned immediately, so later changes
// to it do not affect the snapshot. A nil image, typed or not, counts as
// blank.
func (s *Show) Capture(img image.Image) bool {
	if isNilImage(img) || !hasInk(img) {
		s.ClearShape()
		return false
	}
	s.shape = NewEmissionShape(img, s.cfg.SampleStride)
	s.emit(ShowEvent{Type: EventShapeCaptured, Particles: s.shape.Len()})
	return true
}

// isNilImage reports whether img is nil or a nil pointer to one of the
// concrete image types.
func isNilImage(img image.Image) bool {
	if img == nil {
		return true
	}
	v := reflect.ValueOf(img)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// ClearShape drops the captured shape and switches shape mode off.
func (s *Show) ClearShape() {
	wasOn := s.ShapeMode()
	s.shape = nil
	if wasOn {
		s.emit(ShowEvent{Type: EventShapeCleared})
	}
}

// Launch adds a shell at (x, y) with color c and returns it.
func (s *Show) Launch(x, y float64, c Color) *Firework {
	s.nextID++
	f := newFirework(s.nextID, x, y, c, &s.cfg, s.src)
	s.fireworks = append(s.fireworks, f)
	s.emit(ShowEvent{Type: EventLaunch, FireworkID: f.ID, X: x, Y: y, Color: c})
	return f
}

// LaunchRandom adds a shell at a random x along the bottom edge with a
// random hue.
func (s *Show) LaunchRandom() *Firework {
	x := s.src.Float64() * s.width
	hue := s.src.Float64() * 360
	return s.Launch(x, s.height, ColorFromHSL(hue, s.cfg.Saturation, s.cfg.Lightness))
}

// Step runs one frame: clear dst, update and draw every firework in launch
// order, retire spent fireworks, then maybe launch one new shell.
func (s *Show) Step(dst Surface) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	dst.Clear()

	for _, f := range s.fireworks {
		wasAscending := f.state == StateAscending
		f.Update(s.shape)
		if wasAscending && f.state == StateDetonated {
			s.emit(ShowEvent{
				Type: EventDetonate, FireworkID: f.ID, X: f.X, Y: f.Y,
				Color: f.Color, Particles: len(f.particles), Shaped: f.shaped,
			})
		}
		f.Draw(dst)
	}

	s.retire()

	if s.cfg.SpawnChance > 0 && s.src.Float64() < s.cfg.SpawnChance {
		s.LaunchRandom()
	}

	s.steps++

	if s.debug {
		s.debugLog(s.collectStats(time.Since(t0)))
	}
}

// retire compacts the live list in place, keeping launch order and
// dropping spent fireworks.
func (s *Show) retire() {
	kept := s.fireworks[:0]
	for _, f := range s.fireworks {
		if !f.Spent() {
			kept = append(kept, f)
			continue
		}
		s.emit(ShowEvent{Type: EventRetire, FireworkID: f.ID, X: f.X, Y: f.Y, Color: f.Color})
	}
	for i := len(kept); i < len(s.fireworks); i++ {
		s.fireworks[i] = nil
	}
	s.fireworks = kept
}

func (s *Show) emit(e ShowEvent) {
	if s.sink == nil {
		return
	}
	e.Step = s.steps
	s.sink.EmitEvent(e)
}
