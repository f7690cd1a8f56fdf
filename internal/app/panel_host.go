package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/shadergrid/internal/config"
	"github.com/Faultbox/shadergrid/internal/descriptor"
	"github.com/Faultbox/shadergrid/internal/engine/texture"
	"github.com/Faultbox/shadergrid/internal/engine/ui"
)

const (
	controlsWidth  = 340
	messageTimeout = 3 * time.Second
)

type panelHost struct {
	ctx      context.Context
	app      *Context
	backend  *ui.Backend
	controls *ui.Controls
	viewport *ui.Viewport

	// Filled by the dialog goroutine, drained on the render thread.
	pendingSave chan string

	message   string
	messageAt time.Time
}

// shutdowner releases a resource whose main loop never ran.
type shutdowner interface {
	Shutdown()
}

// shutdownOnError releases s when the surrounding function fails before
// handing s its loop.
func shutdownOnError(errp *error, s shutdowner) {
	if *errp != nil {
		s.Shutdown()
	}
}

func runPanel(ctx context.Context, cfg *config.Config, table descriptor.Table, tex *texture.Texture) (err error) {
	backend, err := ui.NewBackend(windowTitle, cfg.Graphics.Width, cfg.Graphics.Height, cfg.Graphics.Font)
	if err != nil {
		return err
	}
	defer shutdownOnError(&err, backend)

	h := &panelHost{
		ctx:         ctx,
		backend:     backend,
		controls:    ui.NewControls("Parameters"),
		pendingSave: make(chan string, 1),
	}

	h.app, err = newContext(ctx, cfg, table, tex, h.controls, cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return err
	}
	defer h.app.Close()

	h.viewport, err = ui.NewViewport(int32(cfg.Graphics.Width), int32(cfg.Graphics.Height))
	if err != nil {
		return err
	}
	defer h.viewport.Close()

	h.app.log.Info("panel host running", zap.Int("controls", h.controls.Len()))
	backend.Run(h.render)
	return nil
}

func (h *panelHost) render() {
	if h.ctx.Err() != nil {
		h.backend.Close()
		return
	}

	select {
	case path := <-h.pendingSave:
		if err := h.app.SaveScene(path); err != nil {
			h.app.log.Error("save scene failed", zap.Error(err))
			h.notify(fmt.Sprintf("Save failed: %v", err))
		} else {
			h.notify("Saved " + filepath.Base(path))
		}
	default:
	}

	screenshot := ui.IsKeyPressed(imgui.KeyF12)

	h.renderMenu()

	x, y, w, hgt := h.backend.GetViewport()
	sceneW := max(w-controlsWidth, 1)
	h.viewport.Draw(x, y, sceneW, hgt, h.app.Camera, h.app.Frame)
	h.controls.Draw(x+sceneW, y, w-sceneW, hgt)

	if screenshot {
		h.captureScreenshot()
	}
	h.renderMessage(x, y)
}

func (h *panelHost) renderMenu() {
	if imgui.BeginMainMenuBar() {
		if imgui.BeginMenu("File") {
			if imgui.MenuItemBool("Save Scene As...") {
				h.saveSceneDialog()
			}
			if imgui.MenuItemBool("Save Settings") {
				h.saveSettings()
			}
			if imgui.MenuItemBool("Screenshot (F12)") {
				h.captureScreenshot()
			}
			imgui.Separator()
			if imgui.MenuItemBool("Exit") {
				h.backend.Close()
			}
			imgui.EndMenu()
		}
		imgui.EndMainMenuBar()
	}
}

// saveSceneDialog asks for a destination without blocking the frame loop.
// The path is applied on the render thread next frame.
func (h *panelHost) saveSceneDialog() {
	go func() {
		filename, err := dialog.File().
			Filter("Scene files", "yaml", "yml").
			Title("Save Scene As").
			Save()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				h.app.log.Warn("file dialog failed", zap.Error(err))
			}
			return
		}
		if ext := strings.ToLower(filepath.Ext(filename)); ext != ".yaml" && ext != ".yml" {
			filename += ".yaml"
		}
		select {
		case h.pendingSave <- filename:
		default:
		}
	}()
}

func (h *panelHost) saveSettings() {
	if err := h.app.Config.Save(); err != nil {
		h.app.log.Error("save settings failed", zap.Error(err))
		h.notify(fmt.Sprintf("Save failed: %v", err))
		return
	}
	h.notify("Settings saved to " + config.ConfigDir())
}

func (h *panelHost) captureScreenshot() {
	path, err := h.app.Shots.CaptureFromImage(h.viewport.Framebuffer().ReadImage())
	if err != nil {
		h.app.log.Error("screenshot failed", zap.Error(err))
		h.notify(fmt.Sprintf("Screenshot failed: %v", err))
		return
	}
	h.app.log.Info("screenshot saved", zap.String("path", path))
	h.notify("Screenshot: " + filepath.Base(path))
}

func (h *panelHost) notify(msg string) {
	h.message = msg
	h.messageAt = time.Now()
}

func (h *panelHost) renderMessage(x, y float32) {
	if h.message == "" || time.Since(h.messageAt) > messageTimeout {
		return
	}
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoFocusOnAppearing
	imgui.SetNextWindowPos(imgui.NewVec2(x+10, y+10))
	imgui.SetNextWindowBgAlpha(0.85)
	if imgui.BeginV("##Notify", nil, flags) {
		imgui.Text(h.message)
	}
	imgui.End()
}
