// Package debug provides screenshot capture for the running scene.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/Faultbox/shadergrid/internal/engine/texture"
)

// ScreenshotCapture writes PNG screenshots with timestamped names.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	now       func() time.Time
	last      string
}

// NewScreenshotCapture creates a capture writing to outputDir.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{outputDir: outputDir, prefix: prefix, now: time.Now}
}

// CaptureFromPixels saves bottom-up RGBA rows as read by glReadPixels.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}
	img := &image.RGBA{
		Pix:    append([]byte(nil), pixels...),
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	texture.FlipRows(img)
	return sc.CaptureFromImage(img)
}

// CaptureFromImage saves img.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.GenerateFilename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	sc.last = filename
	return filename, nil
}

// GenerateFilename returns the next screenshot path. Captures within the
// same second get a numeric suffix instead of overwriting each other.
func (sc *ScreenshotCapture) GenerateFilename() string {
	base := fmt.Sprintf("%s_%s", sc.prefix, sc.now().Format("2006-01-02_15-04-05"))
	name := filepath.Join(sc.outputDir, base+".png")
	for i := 2; name == sc.last || exists(name); i++ {
		name = filepath.Join(sc.outputDir, fmt.Sprintf("%s_%d.png", base, i))
	}
	return name
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
