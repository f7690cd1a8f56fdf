// Package renderer draws assembled scenes with OpenGL 4.1.
package renderer

import (
	"fmt"
	"sort"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/shadergrid/internal/engine/shader"
	"github.com/Faultbox/shadergrid/internal/logger"
	"github.com/Faultbox/shadergrid/internal/scene"
	"github.com/Faultbox/shadergrid/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [4]float32
}

// Camera supplies the per-frame view.
type Camera interface {
	ViewMatrix() math.Mat4
	ProjectionMatrix() math.Mat4
	Position() math.Vec3
}

// Renderer uploads renderables and draws them. It implements scene.Sink.
type Renderer struct {
	config   Config
	log      *zap.Logger
	programs map[string]*shader.Program
	meshes   map[*scene.Renderable]*gpuMesh
	textures *textureCache
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r := &Renderer{
		config:   cfg,
		log:      logger.Named("renderer"),
		programs: make(map[string]*shader.Program),
		meshes:   make(map[*scene.Renderable]*gpuMesh),
		textures: newTextureCache(),
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))
	return r, nil
}

// Add compiles the renderable's program (shared between equal sources) and
// uploads its geometry.
func (r *Renderer) Add(rd *scene.Renderable) error {
	if _, ok := r.meshes[rd]; ok {
		return nil
	}

	key := rd.Material.ProgramKey()
	prog, ok := r.programs[key]
	if !ok {
		vs, fs := rd.Material.ProgramSources()
		var err error
		prog, err = shader.NewProgram(vs, fs)
		if err != nil {
			return fmt.Errorf("compile %s (%s mode): %w", rd.Name, rd.Material.Mode, err)
		}
		r.programs[key] = prog
		r.log.Debug("program linked", zap.String("mesh", rd.Name), zap.Uint32("program", prog.ID))
	}

	gm := uploadMesh(rd.Geometry, prog)
	r.meshes[rd] = gm
	r.log.Debug("mesh uploaded",
		zap.String("mesh", rd.Name),
		zap.Int("vertices", rd.Geometry.VertexCount()),
		zap.Int32("indices", gm.count),
	)
	return nil
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Begin clears the current target.
func (r *Renderer) Begin() {
	c := r.config.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.DepthMask(true)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Render draws every mesh of s. Opaque meshes go first, transparent ones
// after them sorted back to front.
func (r *Renderer) Render(s *scene.Scene, cam Camera) {
	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()
	eye := cam.Position()

	var opaque, transparent []*scene.Renderable
	for _, rd := range s.Meshes() {
		if rd.Material.Transparent {
			transparent = append(transparent, rd)
		} else {
			opaque = append(opaque, rd)
		}
	}
	sort.SliceStable(transparent, func(i, j int) bool {
		return depth(view, transparent[i]) < depth(view, transparent[j])
	})

	frame := frameState{view: view, proj: proj, eye: eye}
	for _, rd := range opaque {
		r.draw(rd, &frame)
	}
	for _, rd := range transparent {
		r.draw(rd, &frame)
	}

	gl.BindVertexArray(0)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

type frameState struct {
	view, proj math.Mat4
	eye        math.Vec3
}

// depth returns the view-space z of the mesh origin; more negative is farther.
func depth(view math.Mat4, rd *scene.Renderable) float32 {
	return view.TransformVec3(rd.Position).Z
}

func (r *Renderer) draw(rd *scene.Renderable, f *frameState) {
	gm, ok := r.meshes[rd]
	if !ok {
		return
	}
	m := rd.Material

	if m.DoubleSide {
		gl.Disable(gl.CULL_FACE)
	} else {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	}
	if m.Transparent {
		gl.Enable(gl.BLEND)
		gl.BlendFuncSeparate(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}

	p := gm.program
	p.Use()
	model := rd.ModelMatrix()
	modelView := f.view.Mul(model)
	setMatrix(p, "projectionMatrix", f.proj)
	setMatrix(p, "viewMatrix", f.view)
	setMatrix(p, "modelMatrix", model)
	setMatrix(p, "modelViewMatrix", modelView)
	if loc := p.Uniform("normalMatrix"); loc >= 0 {
		nm := modelView.NormalMatrix()
		gl.UniformMatrix3fv(loc, 1, false, &nm[0])
	}
	if loc := p.Uniform("cameraPosition"); loc >= 0 {
		gl.Uniform3f(loc, f.eye.X, f.eye.Y, f.eye.Z)
	}
	r.setUniforms(p, m)

	gl.BindVertexArray(gm.vao)
	gl.DrawElements(gl.TRIANGLES, gm.count, gl.UNSIGNED_INT, nil)
}

func setMatrix(p *shader.Program, name string, m math.Mat4) {
	if loc := p.Uniform(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, m.Ptr())
	}
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, gm := range r.meshes {
		gm.delete()
	}
	for _, p := range r.programs {
		p.Delete()
	}
	r.textures.deleteAll()
	r.meshes = make(map[*scene.Renderable]*gpuMesh)
	r.programs = make(map[string]*shader.Program)
}
