package fireworks

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Hue    float64 `json:"hue,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"press": true, "move": true, "release": true, "drag": true,
	"save": true, "clear": true, "launch": true, "wait": true, "screenshot": true,
}

// TestRunner sequences sketch strokes, capture/reset triggers, launches and
// screenshots across frames. Attach to a Studio via SetTestRunner.
//
// Script format:
//
//	{"steps": [
//	  {"action": "drag", "fromX": 10, "fromY": 10, "toX": 90, "toY": 40, "frames": 8},
//	  {"action": "save"},
//	  {"action": "launch", "x": 400, "hue": 120},
//	  {"action": "wait", "frames": 95},
//	  {"action": "screenshot", "label": "heart"}
//	]}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Studio via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Remaining returns the number of steps not yet started.
func (r *TestRunner) Remaining() int {
	return len(r.steps) - r.cursor
}

// step advances the test runner by one frame. Called from Studio.Update.
func (r *TestRunner) step(s *Studio) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "save":
		s.Save()
	case "clear":
		s.Clear()
	case "launch":
		cfg := s.Show.Config()
		y := st.Y
		if y == 0 {
			y = s.Show.height
		}
		s.Show.Launch(st.X, y, ColorFromHSL(st.Hue, cfg.Saturation, cfg.Lightness))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
