package fireworks

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// padTexture mirrors a SketchPad raster into a persistent GPU image and
// draws it with a background and an "armed" border.
type padTexture struct {
	image   *ebiten.Image
	w, h    int
	version uint64
	synced  bool

	pulse   *gween.Tween
	glow    float64
	forward bool
}

const pulseFrames = 45

func newPadTexture(w, h int) *padTexture {
	return &padTexture{
		image:   ebiten.NewImage(w, h),
		w:       w,
		h:       h,
		pulse:   gween.New(0, 1, pulseFrames, ease.InOutSine),
		forward: true,
	}
}

// sync uploads the pad raster when it changed since the last upload.
func (t *padTexture) sync(p *SketchPad) {
	if t.synced && p.Version() == t.version {
		return
	}
	t.image.WritePixels(p.Image().Pix)
	t.version = p.Version()
	t.synced = true
}

// step advances the border pulse by one frame. The pulse only runs while
// shape mode is on.
func (t *padTexture) step(armed bool) {
	if !armed {
		t.glow = 0
		t.pulse.Reset()
		t.forward = true
		return
	}
	v, finished := t.pulse.Update(1)
	if t.forward {
		t.glow = float64(v)
	} else {
		t.glow = 1 - float64(v)
	}
	if finished {
		t.pulse.Reset()
		t.forward = !t.forward
	}
}

// draw renders the pad strip at (x, y) on dst.
func (t *padTexture) draw(dst *ebiten.Image, x, y float64, armed bool, accent Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(t.w), float32(t.h),
		Color{0.08, 0.08, 0.1, 1}.toNRGBA(1), false)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(x, y)
	dst.DrawImage(t.image, &op)

	border := Color{0.3, 0.3, 0.35, 1}
	width := float32(1)
	if armed {
		border = accent
		width = 2 + float32(2*t.glow)
	}
	alpha := 1.0
	if armed {
		alpha = 0.5 + 0.5*t.glow
	}
	vector.StrokeRect(dst, float32(x)+width/2, float32(y)+width/2,
		float32(t.w)-width, float32(t.h)-width, width, border.toNRGBA(alpha), false)
}
