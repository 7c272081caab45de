package fireworks

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Screenshot queues a labeled screenshot to be captured after the current
// frame is drawn. The PNG is written to ScreenshotDir with a timestamped
// filename.
func (s *Studio) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// PendingScreenshots returns the number of queued screenshot labels.
func (s *Studio) PendingScreenshots() int {
	return len(s.screenshotQueue)
}

// flushScreenshots writes img once for every queued label. Failures are
// reported on stderr and do not stop the show.
func (s *Studio) flushScreenshots(img image.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	defer func() { s.screenshotQueue = s.screenshotQueue[:0] }()

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[fireworks] screenshot: mkdir %s: %v\n", s.ScreenshotDir, err)
		return
	}

	stamp := time.Now().Format("20060102_150405")
	for i, label := range s.screenshotQueue {
		name := fmt.Sprintf("%s_%06d_%s.png", stamp, s.Show.Steps(), sanitizeLabel(label))
		if i > 0 {
			name = fmt.Sprintf("%s_%06d_%s_%d.png", stamp, s.Show.Steps(), sanitizeLabel(label), i)
		}
		if err := writePNG(filepath.Join(s.ScreenshotDir, name), img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[fireworks] screenshot: %v\n", err)
		}
	}
}

// unpremultiply converts premultiplied RGBA pixels to a straight-alpha image.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
