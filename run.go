package fireworks

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the window size in pixels. Zero means 1024x768.
	Width, Height int
	// PadHeight is the height of the sketch strip at the bottom. Zero means 200.
	PadHeight int
	// ShowFPS draws frame rate and population counts in the top-left corner.
	ShowFPS bool
	// Debug logs per-step statistics to stderr.
	Debug bool
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = "Fireworks"
	}
	if c.Width <= 0 {
		c.Width = 1024
	}
	if c.Height <= 0 {
		c.Height = 768
	}
	if c.PadHeight <= 0 {
		c.PadHeight = 200
	}
	if c.PadHeight >= c.Height {
		c.PadHeight = c.Height / 4
	}
	return c
}

// ShowSize returns the size of the fireworks area above the pad.
func (c RunConfig) ShowSize() (int, int) {
	c = c.withDefaults()
	return c.Width, c.Height - c.PadHeight
}

// PadSize returns the size of the sketch strip.
func (c RunConfig) PadSize() (int, int) {
	c = c.withDefaults()
	return c.Width, c.PadHeight
}

// NewStudioFor creates a Studio sized for the window described by rc.
func NewStudioFor(cfg Config, rc RunConfig, src Source) (*Studio, error) {
	sw, sh := rc.ShowSize()
	pw, ph := rc.PadSize()
	return NewStudio(cfg, sw, sh, pw, ph, src)
}

// Run opens a window and drives studio until the window closes or Escape is
// pressed. The fireworks area fills the top of the window and the sketch pad
// the bottom strip; S saves the sketch, C clears it.
func Run(studio *Studio, cfg RunConfig) error {
	cfg = cfg.withDefaults()
	g, err := newGame(studio, cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

type game struct {
	studio  *Studio
	cfg     RunConfig
	canvas  *ebiten.Image
	surface Surface
	pad     *padTexture
	padY    float64
	hud     hud
	pixels  []byte
}

func newGame(studio *Studio, cfg RunConfig) (*game, error) {
	sw, sh := cfg.ShowSize()
	pw, ph := studio.Pad.Size()
	if pw != cfg.Width || ph != cfg.PadHeight {
		return nil, fmt.Errorf("pad is %dx%d, window expects %dx%d", pw, ph, cfg.Width, cfg.PadHeight)
	}
	canvas := ebiten.NewImage(sw, sh)
	studio.Show.Resize(sw, sh)
	studio.Show.SetDebugMode(cfg.Debug)
	return &game{
		studio:  studio,
		cfg:     cfg,
		canvas:  canvas,
		surface: NewImageSurface(canvas),
		pad:     newPadTexture(pw, ph),
		padY:    float64(sh),
	}, nil
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.studio.Save()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.studio.Clear()
	}

	x, y, pressed := readPointer()
	g.tick(x, y-g.padY, pressed)
	return nil
}

// tick advances input, the script and the show by exactly one step, with
// the pointer already in pad coordinates.
func (g *game) tick(padX, padY float64, pressed bool) {
	g.studio.SetPointer(padX, padY, pressed)
	g.studio.Frame(g.surface)
	g.pad.step(g.studio.Show.ShapeMode())
}

// readPointer returns the mouse position, or the first touch when one is
// active.
func readPointer() (float64, float64, bool) {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		tx, ty := ebiten.TouchPosition(ids[0])
		return float64(tx), float64(ty), true
	}
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// Draw only presents the canvas last rendered by Update, so the show runs
// at TPS regardless of the display refresh rate.
func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas, nil)

	armed := g.studio.Show.ShapeMode()
	g.pad.sync(g.studio.Pad)
	g.pad.draw(screen, 0, g.padY, armed, g.studio.Show.Config().StrokeColor)

	if g.cfg.ShowFPS {
		g.hud.update(g.studio.Show.Stats())
		g.hud.draw(screen)
	}

	if g.studio.PendingScreenshots() > 0 {
		b := screen.Bounds()
		w, h := b.Dx(), b.Dy()
		if len(g.pixels) != 4*w*h {
			g.pixels = make([]byte, 4*w*h)
		}
		screen.ReadPixels(g.pixels)
		g.studio.flushScreenshots(unpremultiply(g.pixels, w, h))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
