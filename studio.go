package fireworks

import "fmt"

// Studio ties a Show to its SketchPad and routes pointer input, scripted
// input, capture/reset triggers and screenshots. Hosts (the ebiten window,
// the terminal, the headless replay) only translate their input into Studio
// calls and hand it a Surface once per frame.
type Studio struct {
	Show *Show
	Pad  *SketchPad

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string

	runner          *TestRunner
	injectQueue     []syntheticPointerEvent
	screenshotQueue []string

	live    pointerSample
	hasLive bool
	down    bool // a stroke is in progress
	blocked bool // pressed outside the pad; ignore until release
}

// pointerSample is one frame's pointer reading in pad coordinates.
type pointerSample struct {
	x, y    float64
	pressed bool
}

// NewStudio creates a show for a width×height primary surface and a
// padWidth×padHeight sketch pad.
func NewStudio(cfg Config, width, height, padWidth, padHeight int, src Source) (*Studio, error) {
	show, err := NewShow(cfg, width, height, src)
	if err != nil {
		return nil, err
	}
	if padWidth <= 0 || padHeight <= 0 {
		return nil, fmt.Errorf("%w: pad size %dx%d", ErrInvalidConfig, padWidth, padHeight)
	}
	return &Studio{
		Show:          show,
		Pad:           NewSketchPad(padWidth, padHeight, cfg),
		ScreenshotDir: "screenshots",
	}, nil
}

// Save is the capture trigger: it snapshots the pad into the show and
// reports whether shape mode is now on.
func (s *Studio) Save() bool {
	return s.Show.Capture(s.Pad.Image())
}

// Clear is the reset trigger: it erases the pad and switches shape mode off.
func (s *Studio) Clear() {
	s.Pad.Clear()
	s.down = false
	s.Show.ClearShape()
}

// SetPointer records this frame's live pointer reading in pad coordinates.
// It is applied on the next Update unless scripted input is pending.
func (s *Studio) SetPointer(x, y float64, pressed bool) {
	s.live = pointerSample{x: x, y: y, pressed: pressed}
	s.hasLive = true
}

// SetTestRunner attaches a scripted input runner. Its step runs at the start
// of every Update.
func (s *Studio) SetTestRunner(r *TestRunner) {
	s.runner = r
}

// TestRunner returns the attached runner, or nil.
func (s *Studio) TestRunner() *TestRunner {
	return s.runner
}

// Update processes scripted steps and one pointer event. Injected events
// take precedence over the live pointer.
func (s *Studio) Update() {
	if s.runner != nil {
		s.runner.step(s)
	}
	if !s.processInjectedInput() && s.hasLive {
		s.processPointer(s.live)
	}
	s.hasLive = false
}

// Draw advances the show by one step onto dst. Pending screenshots are
// written when dst is a RasterSurface.
func (s *Studio) Draw(dst Surface) {
	s.Show.Step(dst)
	if rs, ok := dst.(*RasterSurface); ok {
		s.flushScreenshots(rs.Image())
	}
}

// Frame is Update followed by Draw.
func (s *Studio) Frame(dst Surface) {
	s.Update()
	s.Draw(dst)
}

// processPointer runs the stroke state machine for one pointer sample.
func (s *Studio) processPointer(p pointerSample) {
	switch {
	case p.pressed && s.down:
		s.Pad.PointerMove(p.x, p.y)
	case p.pressed && !s.down && !s.blocked:
		w, h := s.Pad.Size()
		if p.x < 0 || p.y < 0 || p.x >= float64(w) || p.y >= float64(h) {
			s.blocked = true
			return
		}
		s.down = true
		s.Pad.PointerDown(p.x, p.y)
	case !p.pressed:
		if s.down {
			s.Pad.PointerMove(p.x, p.y)
			s.Pad.PointerUp()
		}
		s.down = false
		s.blocked = false
	}
}
