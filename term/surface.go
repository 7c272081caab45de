package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/fireworks"
)

// halfBlock draws the top half of a cell in the foreground color and the
// bottom half in the background color, doubling vertical resolution.
const halfBlock = '▀'

// CellSurface is a fireworks.Surface backed by a grid of terminal cells.
// Drawing happens in the show's own coordinate space (width×height) and is
// scaled onto cols×(2·rows) half-cell pixels.
type CellSurface struct {
	width, height int
	cols, rows    int
	pix           []fireworks.Color
}

// NewCellSurface creates a surface presenting a width×height drawing space
// on cols×rows terminal cells.
func NewCellSurface(width, height, cols, rows int) *CellSurface {
	s := &CellSurface{width: width, height: height}
	s.Resize(cols, rows)
	return s
}

// Resize changes the cell grid. The contents are cleared.
func (s *CellSurface) Resize(cols, rows int) {
	s.cols, s.rows = max(cols, 1), max(rows, 1)
	s.pix = make([]fireworks.Color, s.cols*s.rows*2)
}

// Cells returns the cell grid size.
func (s *CellSurface) Cells() (cols, rows int) {
	return s.cols, s.rows
}

// Clear implements fireworks.Surface.
func (s *CellSurface) Clear() {
	clear(s.pix)
}

// Size implements fireworks.Surface.
func (s *CellSurface) Size() (int, int) {
	return s.width, s.height
}

// FillCircle implements fireworks.Surface. Every half-cell pixel whose
// center lies inside the scaled disc is blended; a disc smaller than one
// pixel still lights the pixel it falls in.
func (s *CellSurface) FillCircle(x, y, radius float64, c fireworks.Color, alpha float64) {
	if alpha <= 0 || radius <= 0 {
		return
	}
	sx := float64(s.cols) / float64(s.width)
	sy := float64(s.rows*2) / float64(s.height)
	cx, cy := x*sx, y*sy
	rx, ry := radius*sx, radius*sy

	px, py := int(math.Floor(cx)), int(math.Floor(cy))
	if rx < 0.5 && ry < 0.5 {
		s.blend(px, py, c, alpha)
		return
	}
	x0, x1 := int(math.Floor(cx-rx)), int(math.Ceil(cx+rx))
	y0, y1 := int(math.Floor(cy-ry)), int(math.Ceil(cy+ry))
	for j := y0; j <= y1; j++ {
		for i := x0; i <= x1; i++ {
			dx := (float64(i) + 0.5 - cx) / rx
			dy := (float64(j) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				s.blend(i, j, c, alpha)
			}
		}
	}
}

// blend composites c over the pixel at (i, j). Pixels hold colors already
// composited over black.
func (s *CellSurface) blend(i, j int, c fireworks.Color, alpha float64) {
	if i < 0 || j < 0 || i >= s.cols || j >= s.rows*2 {
		return
	}
	a := min(alpha*c.A, 1)
	p := &s.pix[j*s.cols+i]
	p.R = p.R*(1-a) + c.R*a
	p.G = p.G*(1-a) + c.G*a
	p.B = p.B*(1-a) + c.B*a
	p.A = 1
}

// pixel returns the half-cell pixel at column i, half-row j.
func (s *CellSurface) pixel(i, j int) fireworks.Color {
	return s.pix[j*s.cols+i]
}

// Flush writes the grid to screen with its top-left cell at (0, top).
func (s *CellSurface) Flush(screen tcell.Screen, top int) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			upper := s.pixel(col, row*2)
			lower := s.pixel(col, row*2+1)
			style := tcell.StyleDefault.Foreground(toTcell(upper)).Background(toTcell(lower))
			screen.SetContent(col, top+row, halfBlock, nil, style)
		}
	}
}

// toTcell converts a pixel, already composited over black, to a terminal
// RGB color.
func toTcell(c fireworks.Color) tcell.Color {
	ch := func(v float64) int32 {
		return int32(math.Round(min(max(v, 0), 1) * 255))
	}
	return tcell.NewRGBColor(ch(c.R), ch(c.G), ch(c.B))
}
