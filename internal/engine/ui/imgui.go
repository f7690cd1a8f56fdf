// Package ui provides the ImGui panel host: the backend window, the
// parameter panel and the scene viewport.
package ui

import (
	"fmt"
	"os"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/shadergrid/internal/engine/window"
	"github.com/Faultbox/shadergrid/internal/logger"
)

// Backend wraps the ImGui SDL backend.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	log     *zap.Logger
}

// NewBackend creates the backend window and initializes OpenGL. fontPath
// may be empty to keep the ImGui default font.
func NewBackend(title string, width, height int, fontPath string) (*Backend, error) {
	b := &Backend{log: logger.Named("ui")}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	if fontPath != "" {
		// Fonts must be added after the context exists and before the first frame.
		b.backend.SetAfterCreateContextHook(func() {
			b.loadFont(fontPath)
		})
	}

	b.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	b.backend.CreateWindow(title, width, height)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	b.log.Info("panel window created",
		zap.String("title", title),
		zap.Int("width", width),
		zap.Int("height", height),
	)
	return b, nil
}

func (b *Backend) loadFont(path string) {
	if _, err := os.Stat(path); err != nil {
		b.log.Warn("font not found, using default", zap.String("path", path))
		return
	}
	fontCfg := imgui.NewFontConfig()
	defer fontCfg.Destroy()
	imgui.CurrentIO().Fonts().AddFontFromFileTTFV(path, 16.0, fontCfg, nil)
}

// Run starts the main render loop. It returns when the window closes.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// Close asks the loop started by Run to exit after the current frame.
func (b *Backend) Close() {
	b.backend.SetShouldClose(true)
}

// Shutdown releases a backend whose loop never started. The backend only
// tears down its window and context when Run returns, so Run is entered
// with the close flag already set.
func (b *Backend) Shutdown() {
	b.backend.SetShouldClose(true)
	b.backend.Run(func() {})
}

// GetViewport returns the main viewport work area.
func (b *Backend) GetViewport() (posX, posY, width, height float32) {
	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	return workPos.X, workPos.Y, workSize.X, workSize.Y
}

// PixelRatio returns the display framebuffer scale, capped at
// window.MaxPixelRatio.
func PixelRatio() float32 {
	scale := imgui.CurrentIO().DisplayFramebufferScale()
	return min(max(scale.X, 1), window.MaxPixelRatio)
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}
