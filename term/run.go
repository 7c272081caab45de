// Package term runs a fireworks Studio inside a terminal using tcell.
//
// The show fills the upper part of the terminal, drawn with half-block
// characters at two pixels per cell. The bottom rows are the sketch pad:
// drag with the left mouse button to draw, press s to use the sketch as the
// burst shape, c to clear it, l to launch a shell and q or Escape to quit.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/fireworks"
)

// Options configures Run.
type Options struct {
	// FPS is the simulation and redraw rate. Zero means 60.
	FPS int
	// PadRows is the height of the sketch strip in cells. Zero means 8.
	PadRows int
}

func (o Options) withDefaults() Options {
	if o.FPS <= 0 {
		o.FPS = 60
	}
	if o.PadRows <= 0 {
		o.PadRows = 8
	}
	return o
}

// app holds the terminal host state for one Run.
type app struct {
	screen  tcell.Screen
	studio  *fireworks.Studio
	opts    Options
	surface *CellSurface
	layout  layout

	mouseX, mouseY int
	mouseDown      bool
}

// Run drives studio in the terminal until ctx is cancelled or the user
// quits. The terminal is restored before Run returns.
func Run(ctx context.Context, studio *fireworks.Studio, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()

	a := newApp(screen, studio, opts)
	return a.run(ctx)
}

func newApp(screen tcell.Screen, studio *fireworks.Studio, opts Options) *app {
	a := &app{screen: screen, studio: studio, opts: opts.withDefaults()}
	cols, rows := screen.Size()
	sw, sh := studio.Show.Size()
	a.layout = newLayout(cols, rows, a.opts.PadRows)
	a.surface = NewCellSurface(sw, sh, a.layout.cols, a.layout.showRows)
	return a
}

func (a *app) run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(a.opts.FPS))
	defer ticker.Stop()

	quit := make(chan struct{})
	defer close(quit)
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			a.frame()
		}
	}
}

// handleEvent applies one terminal event. It returns false to quit.
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 's':
				a.studio.Save()
			case 'c':
				a.studio.Clear()
			case 'l':
				a.studio.Show.LaunchRandom()
			}
		}
	case *tcell.EventMouse:
		a.mouseX, a.mouseY = ev.Position()
		a.mouseDown = ev.Buttons()&tcell.Button1 != 0
	case *tcell.EventResize:
		cols, rows := a.screen.Size()
		a.layout = newLayout(cols, rows, a.opts.PadRows)
		a.surface.Resize(a.layout.cols, a.layout.showRows)
		a.screen.Sync()
	}
	return true
}

// frame feeds the pointer to the studio, steps the show and redraws.
func (a *app) frame() {
	pw, ph := a.studio.Pad.Size()
	px, py := a.layout.padPoint(a.mouseX, a.mouseY, pw, ph)
	a.studio.SetPointer(px, py, a.mouseDown)
	a.studio.Frame(a.surface)

	a.surface.Flush(a.screen, 0)
	drawPad(a.screen, a.studio, a.layout)
	a.screen.Show()
}
