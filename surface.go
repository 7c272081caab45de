package fireworks

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is the primary drawing target of a Show. Implementations receive
// alpha already clamped to [0, 1].
type Surface interface {
	// Clear wipes the whole surface.
	Clear()
	// FillCircle draws a filled disc centered at (x, y).
	FillCircle(x, y, radius float64, c Color, alpha float64)
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)
}

// ImageSurface draws onto an *ebiten.Image. It is the surface used by Run.
type ImageSurface struct {
	image     *ebiten.Image
	Antialias bool
}

// NewImageSurface wraps img. The image is not copied.
func NewImageSurface(img *ebiten.Image) *ImageSurface {
	return &ImageSurface{image: img, Antialias: true}
}

// Image returns the wrapped image.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.image
}

// Clear fills the image with transparent black.
func (s *ImageSurface) Clear() {
	s.image.Clear()
}

// FillCircle implements Surface.
func (s *ImageSurface) FillCircle(x, y, radius float64, c Color, alpha float64) {
	if alpha <= 0 || radius <= 0 {
		return
	}
	vector.DrawFilledCircle(s.image, float32(x), float32(y), float32(radius), c.toNRGBA(alpha), s.Antialias)
}

// Size implements Surface.
func (s *ImageSurface) Size() (int, int) {
	b := s.image.Bounds()
	return b.Dx(), b.Dy()
}

// RasterSurface draws onto an in-memory *image.RGBA without a GPU. The
// replay command and the tests render through it.
type RasterSurface struct {
	image      *image.RGBA
	background Color
	raster     rasterizer
}

// NewRasterSurface allocates a w×h surface cleared to background.
func NewRasterSurface(w, h int, background Color) *RasterSurface {
	s := &RasterSurface{
		image:      image.NewRGBA(image.Rect(0, 0, w, h)),
		background: background,
	}
	s.Clear()
	return s
}

// Image returns the backing image. It is reused across frames.
func (s *RasterSurface) Image() *image.RGBA {
	return s.image
}

// Clear fills the surface with its background color.
func (s *RasterSurface) Clear() {
	if s.background.A == 0 {
		clear(s.image.Pix)
		return
	}
	c := s.background.toNRGBA(1)
	// Background is opaque or translucent; store premultiplied.
	a := uint32(c.A)
	r := uint8(uint32(c.R) * a / 255)
	g := uint8(uint32(c.G) * a / 255)
	b := uint8(uint32(c.B) * a / 255)
	pix := s.image.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, c.A
	}
}

// FillCircle implements Surface.
func (s *RasterSurface) FillCircle(x, y, radius float64, c Color, alpha float64) {
	if alpha <= 0 || radius <= 0 {
		return
	}
	s.raster.fillCircle(s.image, x, y, radius, c.toNRGBA(alpha))
}

// Size implements Surface.
func (s *RasterSurface) Size() (int, int) {
	b := s.image.Bounds()
	return b.Dx(), b.Dy()
}
