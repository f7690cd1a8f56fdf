package app

import (
	"context"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/shadergrid/internal/config"
	"github.com/Faultbox/shadergrid/internal/descriptor"
	"github.com/Faultbox/shadergrid/internal/engine/input"
	"github.com/Faultbox/shadergrid/internal/engine/texture"
	"github.com/Faultbox/shadergrid/internal/engine/window"
	"github.com/Faultbox/shadergrid/internal/panel"
)

// runPlayer shows the scene full-window with orbit controls and no panel.
func runPlayer(ctx context.Context, cfg *config.Config, table descriptor.Table, tex *texture.Texture) error {
	win, err := window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Close()

	width, height := win.DrawableSize()
	app, err := newContext(ctx, cfg, table, tex, panel.Discard, width, height)
	if err != nil {
		return err
	}
	defer app.Close()

	in := input.New()
	app.log.Info("player host running")

	for ctx.Err() == nil {
		if in.Update() {
			break
		}

		if _, _, ok := in.Resized(); ok {
			width, height = win.DrawableSize()
			app.Renderer.Resize(width, height)
		}
		if in.DragX != 0 || in.DragY != 0 {
			app.Camera.HandleDrag(in.DragX, in.DragY)
		}
		if in.Wheel != 0 {
			app.Camera.HandleZoom(in.Wheel)
		}

		app.Frame(width, height)

		if in.IsKeyPressed(sdl.SCANCODE_F12) {
			captureBackBuffer(app, width, height)
		}
		win.SwapBuffers()
	}
	return nil
}

func captureBackBuffer(app *Context, width, height int) {
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	path, err := app.Shots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		app.log.Error("screenshot failed", zap.Error(err))
		return
	}
	app.log.Info("screenshot saved", zap.String("path", path))
}
