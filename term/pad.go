package term

import (
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/fireworks"
)

// layout splits the terminal into the show area on top and the pad strip
// below it. The first pad row is a status line.
type layout struct {
	cols, rows int
	showRows   int
	padTop     int // first sketch row, below the status line
	padRows    int // sketch rows
}

func newLayout(cols, rows, padRows int) layout {
	padRows = min(padRows, rows/2)
	padRows = max(padRows, 2)
	showRows := max(rows-padRows, 1)
	return layout{
		cols:     max(cols, 1),
		rows:     rows,
		showRows: showRows,
		padTop:   showRows + 1,
		padRows:  max(rows-showRows-1, 1),
	}
}

// padPoint maps the terminal cell (x, y) to the center of the matching
// region of a pw×ph sketch pad. Cells outside the sketch rows map outside
// the pad.
func (l layout) padPoint(x, y, pw, ph int) (float64, float64) {
	px := (float64(x) + 0.5) * float64(pw) / float64(l.cols)
	py := (float64(y-l.padTop) + 0.5) * float64(ph) / float64(l.padRows)
	return px, py
}

var (
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.NewRGBColor(20, 20, 26))
	armedStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGray)
	padStyle    = tcell.StyleDefault.Background(tcell.NewRGBColor(20, 20, 26))
)

const statusText = " drag: sketch   s: save shape   c: clear   l: launch   q: quit "

// drawPad renders the status line and the sketch strip.
func drawPad(screen tcell.Screen, studio *fireworks.Studio, l layout) {
	style := statusStyle
	label := " shape: off "
	if studio.Show.ShapeMode() {
		style = armedStyle
		label = " shape: on "
	}
	row := l.showRows
	for x := 0; x < l.cols; x++ {
		screen.SetContent(x, row, ' ', nil, style)
	}
	x := drawText(screen, 0, row, style, statusText)
	drawText(screen, max(x, l.cols-len(label)), row, style, label)

	img := studio.Pad.Image()
	ink := tcell.StyleDefault.Foreground(toTcell(studio.Show.Config().StrokeColor)).Background(tcell.NewRGBColor(20, 20, 26))
	for cy := 0; cy < l.padRows; cy++ {
		for cx := 0; cx < l.cols; cx++ {
			top := cellInk(img, l, cx, cy*2)
			bottom := cellInk(img, l, cx, cy*2+1)
			r, st := ' ', padStyle
			switch {
			case top && bottom:
				r, st = '█', ink
			case top:
				r, st = '▀', ink
			case bottom:
				r, st = '▄', ink
			}
			screen.SetContent(cx, l.padTop+cy, r, nil, st)
		}
	}
}

// cellInk reports whether the pad region under half-cell (cx, hy) holds
// any ink.
func cellInk(img *image.RGBA, l layout, cx, hy int) bool {
	b := img.Bounds()
	pw, ph := b.Dx(), b.Dy()
	x0, x1 := cx*pw/l.cols, (cx+1)*pw/l.cols
	y0, y1 := hy*ph/(l.padRows*2), (hy+1)*ph/(l.padRows*2)
	for y := y0; y < max(y1, y0+1) && y < ph; y++ {
		for x := x0; x < max(x1, x0+1) && x < pw; x++ {
			if img.Pix[img.PixOffset(b.Min.X+x, b.Min.Y+y)+3] != 0 {
				return true
			}
		}
	}
	return false
}

// drawText writes s at (x, y) and returns the column after it.
func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
