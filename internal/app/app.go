// Package app wires the assembled scene to a host window and runs the frame loop.
package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/shadergrid/internal/config"
	"github.com/Faultbox/shadergrid/internal/descriptor"
	"github.com/Faultbox/shadergrid/internal/engine/camera"
	"github.com/Faultbox/shadergrid/internal/engine/debug"
	"github.com/Faultbox/shadergrid/internal/engine/renderer"
	"github.com/Faultbox/shadergrid/internal/engine/texture"
	"github.com/Faultbox/shadergrid/internal/logger"
	"github.com/Faultbox/shadergrid/internal/panel"
	"github.com/Faultbox/shadergrid/internal/scene"
)

const windowTitle = "shadergrid"

// Context is created once per run and passed to the hosts explicitly.
type Context struct {
	Config   *config.Config
	Scene    *scene.Scene
	Camera   *camera.OrbitCamera
	Renderer *renderer.Renderer
	Animator scene.Animator
	Clock    *scene.Clock
	Shots    *debug.ScreenshotCapture

	log    *zap.Logger
	frames int
	fpsAt  time.Time
}

// newContext builds the renderer and assembles the scene into it. A GL
// context must be current.
func newContext(ctx context.Context, cfg *config.Config, table descriptor.Table, tex *texture.Texture, p panel.Panel, width, height int) (*Context, error) {
	grid, err := cfg.Grid()
	if err != nil {
		return nil, err
	}

	r, err := renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: cfg.Graphics.ClearColor,
	})
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	seed := uint64(cfg.Scene.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	s, err := scene.Assemble(ctx, table, scene.Options{
		Grid:    grid,
		Texture: tex,
		Panel:   p,
		Sink:    r,
		Rand:    rand.New(rand.NewPCG(seed, seed>>1|1)),
	})
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("assemble scene: %w", err)
	}

	cam := camera.NewOrbitCamera()
	cam.FovY = cfg.Camera.FovY
	cam.Near = cfg.Camera.Near
	cam.Far = cfg.Camera.Far
	cam.Damping = cfg.Camera.Damping
	cam.LookFrom(cfg.CameraPosition(), camera.DefaultTarget)
	cam.SetViewport(width, height)

	c := &Context{
		Config:   cfg,
		Scene:    s,
		Camera:   cam,
		Renderer: r,
		Animator: scene.Animator{Stagger: cfg.Scene.TimeStagger},
		Clock:    scene.NewClock(),
		Shots:    debug.NewScreenshotCapture(cfg.Screenshots.Dir, windowTitle),
		log:      logger.Named("app"),
		fpsAt:    time.Now(),
	}
	c.log.Info("scene ready",
		zap.Int("meshes", s.Len()),
		zap.Stringer("policy", grid.Policy),
		zap.Uint64("seed", seed),
	)
	return c, nil
}

// Frame advances the animation and draws the scene into the currently
// bound target of the given size.
func (c *Context) Frame(width, height int) {
	elapsed, dt := c.Clock.Tick()
	c.Animator.Tick(c.Scene, elapsed)

	c.Camera.SetViewport(width, height)
	c.Camera.Update(dt)

	c.Renderer.Begin()
	c.Renderer.Render(c.Scene, c.Camera)

	c.frames++
	if since := time.Since(c.fpsAt); since >= time.Second {
		c.log.Debug("fps", zap.Float64("fps", float64(c.frames)/since.Seconds()))
		c.frames = 0
		c.fpsAt = time.Now()
	}
}

// SaveScene writes the live scene, including panel edits, to path.
func (c *Context) SaveScene(path string) error {
	if err := descriptor.Save(path, c.Scene.Snapshot()); err != nil {
		return err
	}
	c.log.Info("scene saved", zap.String("path", path))
	return nil
}

// Close releases GPU resources.
func (c *Context) Close() {
	if c.Renderer != nil {
		c.Renderer.Close()
	}
}

// Run shows table in the host selected by cfg.Scene.Panel.
func Run(ctx context.Context, cfg *config.Config, table descriptor.Table) error {
	tex := texture.NewLoader().Load(cfg.Scene.Texture)
	if cfg.Scene.Panel {
		return runPanel(ctx, cfg, table, tex)
	}
	return runPlayer(ctx, cfg, table, tex)
}
