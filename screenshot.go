package starnavi

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// DefaultScreenshotDir is where the viewer saves screenshots when RunConfig
// names no directory.
const DefaultScreenshotDir = "screenshots"

// screenshots queues galaxy captures requested during Update and writes
// them at the end of the next Draw.
type screenshots struct {
	dir   string
	queue []string
	log   *zap.Logger
}

// request queues a capture named after label.
func (s *screenshots) request(label string) {
	s.queue = append(s.queue, label)
}

// flush writes one PNG per queued label and returns the paths written.
func (s *screenshots) flush(screen *ebiten.Image, now time.Time) []string {
	if len(s.queue) == 0 {
		return nil
	}
	defer func() { s.queue = s.queue[:0] }()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.log.Warn("screenshot directory", zap.String("dir", s.dir), zap.Error(err))
		return nil
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, b.Dx(), b.Dy())

	var written []string
	for _, label := range s.queue {
		path := filepath.Join(s.dir, screenshotName(now, label))
		if err := writePNG(path, img); err != nil {
			s.log.Warn("screenshot", zap.Error(err))
			continue
		}
		s.log.Info("screenshot saved", zap.String("path", path))
		written = append(written, path)
	}
	return written
}

// unpremultiply converts premultiplied RGBA pixels to a straight-alpha
// image.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, a
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("starnavi: screenshot %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("starnavi: screenshot %s: %w", path, err)
	}
	return f.Close()
}

// screenshotName returns "<stamp>_<label>.png" with every character of
// label outside [A-Za-z0-9.-] replaced by an underscore.
func screenshotName(now time.Time, label string) string {
	label = strings.Trim(strings.TrimSpace(label), "/")
	if label == "" {
		label = "galaxy"
	}
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
	return now.Format("20060102_150405") + "_" + safe + ".png"
}
