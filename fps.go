package fireworks

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hud prints frame rates and population counts. The text is refreshed about
// every half second so it stays readable.
type hud struct {
	text   string
	frames int
}

const hudRefreshFrames = 30

func (h *hud) update(st Stats) {
	h.frames--
	if h.frames > 0 && h.text != "" {
		return
	}
	h.frames = hudRefreshFrames
	shape := "off"
	if st.ShapeMode {
		shape = "on"
	}
	h.text = fmt.Sprintf("FPS: %.1f  TPS: %.1f\nfireworks: %d (%d rising)\nparticles: %d visible / %d\nshape: %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		st.Fireworks, st.Ascending, st.VisibleParticles, st.Particles, shape)
}

func (h *hud) draw(dst *ebiten.Image) {
	ebitenutil.DebugPrint(dst, h.text)
}
