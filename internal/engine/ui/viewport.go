package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/shadergrid/internal/engine/framebuffer"
)

// CameraControl receives viewport mouse input.
type CameraControl interface {
	HandleDrag(deltaX, deltaY float32)
	HandleZoom(delta float32)
}

// Viewport shows an offscreen render target as an ImGui image and forwards
// mouse drags and wheel input over it to a camera.
type Viewport struct {
	fb        *framebuffer.Framebuffer
	lastMouse imgui.Vec2
}

// NewViewport creates a viewport with an initial target size in pixels.
func NewViewport(width, height int32) (*Viewport, error) {
	fb, err := framebuffer.New(width, height)
	if err != nil {
		return nil, err
	}
	return &Viewport{fb: fb}, nil
}

// Framebuffer returns the render target.
func (v *Viewport) Framebuffer() *framebuffer.Framebuffer {
	return v.fb
}

// Draw sizes the target to the window area (times the pixel ratio), calls
// render with the target bound, then displays it.
func (v *Viewport) Draw(x, y, w, h float32, cam CameraControl, render func(width, height int)) {
	if w < 1 || h < 1 {
		return
	}
	ratio := PixelRatio()
	pw, ph := int32(w*ratio), int32(h*ratio)
	if cw, ch := v.fb.Size(); cw != pw || ch != ph {
		v.fb.Resize(pw, ph)
	}

	restore := v.fb.Begin()
	render(int(pw), int(ph))
	restore()

	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##Scene", nil, flags) {
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(v.fb.ColorTexture()))
		imgui.ImageV(*texRef,
			imgui.NewVec2(w, h),
			imgui.NewVec2(0, 1),
			imgui.NewVec2(1, 0))

		if imgui.IsItemHovered() {
			mouse := imgui.MousePos()
			if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
				cam.HandleDrag(mouse.X-v.lastMouse.X, mouse.Y-v.lastMouse.Y)
			}
			v.lastMouse = mouse

			if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
				cam.HandleZoom(wheel)
			}
		}
	}
	imgui.End()
	imgui.PopStyleVar()
}

// Close releases the render target.
func (v *Viewport) Close() {
	v.fb.Destroy()
}
