package sprig

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

// Screenshot queues a labeled capture of the next rendered frame. The PNG is
// written to Config.ScreenshotDir with a timestamped filename.
func (app *Application) Screenshot(label string) {
	app.screenshotQueue = append(app.screenshotQueue, label)
}

// flushScreenshots writes every queued screenshot of screen. Called at the
// end of Application.Draw.
func (app *Application) flushScreenshots(screen *ebiten.Image) {
	if len(app.screenshotQueue) == 0 {
		return
	}
	defer func() { app.screenshotQueue = app.screenshotQueue[:0] }()

	dir := app.cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		CoreLogger().Error("screenshot: mkdir", zap.String("dir", dir), zap.Error(err))
		return
	}

	img := captureImage(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range app.screenshotQueue {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			CoreLogger().Error("screenshot", zap.Error(err))
			continue
		}
		CoreLogger().Info("screenshot saved", zap.String("path", path))
	}
}

// captureImage reads img back and converts premultiplied RGBA to
// straight-alpha NRGBA.
func captureImage(img *ebiten.Image) *image.NRGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	img.ReadPixels(pixels)
	return unpremultiply(pixels, w, h)
}

func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		out.Pix[i] = r
		out.Pix[i+1] = g
		out.Pix[i+2] = b
		out.Pix[i+3] = a
	}
	return out
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sprig: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("sprig: encode %s: %w", path, err)
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
