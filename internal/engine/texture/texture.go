// Package texture loads the image shared by every material.
package texture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/Faultbox/shadergrid/internal/logger"
)

// Texture is a decoded image plus the GL handle the renderer uploads it to.
// A Texture with no Image is an unpopulated slot; it binds as texture 0.
type Texture struct {
	Path  string
	Image *image.RGBA

	// ID is the GL texture name, zero until the renderer uploads Image.
	ID uint32
}

// Loaded reports whether pixel data is available.
func (t *Texture) Loaded() bool {
	return t != nil && t.Image != nil
}

// Size returns the image dimensions, zero when not loaded.
func (t *Texture) Size() (int, int) {
	if !t.Loaded() {
		return 0, 0
	}
	b := t.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Loader decodes textures from disk.
type Loader struct {
	// FlipY stores rows bottom-up so UV (0,0) samples the image's
	// bottom-left corner under GL conventions.
	FlipY bool
}

// NewLoader returns a loader with FlipY enabled.
func NewLoader() *Loader {
	return &Loader{FlipY: true}
}

// Load decodes path. It never fails: errors are logged and an unpopulated
// texture is returned, so materials render with an empty slot.
func (l *Loader) Load(path string) *Texture {
	tex := &Texture{Path: path}
	if path == "" {
		return tex
	}

	img, err := l.Decode(path)
	if err != nil {
		logger.Warn("texture unavailable, rendering without it",
			zap.String("path", path), zap.Error(err))
		return tex
	}
	tex.Image = img

	w, h := tex.Size()
	logger.Debug("texture loaded", zap.String("path", path), zap.Int("width", w), zap.Int("height", h))
	return tex
}

// Decode reads and decodes path into RGBA, applying FlipY.
func (l *Loader) Decode(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read texture: %w", err)
	}

	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err = DecodeTGA(data)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return ToRGBA(img, l.FlipY), nil
}

// ToRGBA converts img to a zero-origin RGBA image, optionally flipped vertically.
func ToRGBA(img image.Image, flipY bool) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	if flipY {
		FlipRows(rgba)
	}
	return rgba
}

// FlipRows reverses the row order of img in place.
func FlipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	rowLen := img.Rect.Dx() * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowLen]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}
