package fireworks

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flash animates the bright disc left behind at a detonation point. Time is
// measured in simulation steps, not seconds.
type flash struct {
	tween    *gween.Tween
	progress float64
	x, y     float64
	baseR    float64
	growR    float64
	color    Color
	done     bool
}

// newFlash returns nil when frames is not positive.
func newFlash(x, y float64, c Color, frames int, baseR, finalR float64) *flash {
	if frames <= 0 {
		return nil
	}
	return &flash{
		tween: gween.New(0, 1, float32(frames), ease.OutQuad),
		x:     x,
		y:     y,
		baseR: baseR,
		growR: finalR - baseR,
		color: c,
	}
}

// step advances the flash by one simulation step.
func (f *flash) step() {
	if f == nil || f.done {
		return
	}
	v, finished := f.tween.Update(1)
	f.progress = float64(v)
	f.done = finished
}

func (f *flash) draw(s Surface) {
	if f == nil || f.done {
		return
	}
	s.FillCircle(f.x, f.y, f.baseR+f.growR*f.progress, f.color, 1-f.progress)
}
