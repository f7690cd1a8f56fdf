// Package material builds the shader-backed materials meshes are drawn with.
package material

import (
	"fmt"
	"sort"

	"github.com/Faultbox/shadergrid/internal/descriptor"
	"github.com/Faultbox/shadergrid/internal/engine/texture"
	"github.com/Faultbox/shadergrid/internal/shaders"
	"github.com/Faultbox/shadergrid/internal/uniform"
)

// Uniforms present on every material.
const (
	UniformTime    = "uTime"
	UniformColor   = "uColor"
	UniformTexture = "uTexture"
)

// Mode selects how shader sources are compiled.
type Mode int

const (
	// ModeStandard prepends the engine's version line, attributes and matrices.
	ModeStandard Mode = iota
	// ModeRaw compiles the sources exactly as given.
	ModeRaw
)

func (m Mode) String() string {
	if m == ModeRaw {
		return "raw"
	}
	return "standard"
}

// Material is a shader program description plus its uniform cells.
// Cells are never replaced after Build; edits change their contents.
type Material struct {
	Name        string
	Shaders     shaders.Pair
	Mode        Mode
	DoubleSide  bool
	Transparent bool
	Uniforms    map[string]*Uniform
}

// Uniform returns the named cell.
func (m *Material) Uniform(name string) (*Uniform, bool) {
	u, ok := m.Uniforms[name]
	return u, ok
}

// UniformNames returns the uniform names in sorted order.
func (m *Material) UniformNames() []string {
	names := make([]string, 0, len(m.Uniforms))
	for n := range m.Uniforms {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Texture returns the shared texture bound to uTexture, or nil.
func (m *Material) Texture() *texture.Texture {
	if u, ok := m.Uniforms[UniformTexture]; ok && u.Kind == uniform.KindSampler {
		return u.Texture
	}
	return nil
}

// SetTime overwrites the uTime cell.
func (m *Material) SetTime(t float32) {
	if u, ok := m.Uniforms[UniformTime]; ok {
		u.SetFloat(t)
	}
}

// Time returns the current uTime value.
func (m *Material) Time() float32 {
	if u, ok := m.Uniforms[UniformTime]; ok {
		return u.Float()
	}
	return 0
}

type options struct {
	name         string
	defaultColor uniform.RGB
}

// Option configures Build.
type Option func(*options)

// WithName sets the material name used in logs.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithDefaultColor sets the uColor used when the descriptor has none.
func WithDefaultColor(c uniform.RGB) Option {
	return func(o *options) {
		o.defaultColor = c
	}
}

// Build creates the material for desc. The base set (uTime, uColor,
// uTexture) is written first; the descriptor's extra uniforms are merged
// over it, then its debug colours seed the colour uniforms they drive.
func Build(desc *descriptor.Mesh, tex *texture.Texture, opts ...Option) (*Material, error) {
	o := options{defaultColor: uniform.Black}
	for _, opt := range opts {
		opt(&o)
	}
	if desc.Shader.Source.Vertex == "" || desc.Shader.Source.Fragment == "" {
		return nil, fmt.Errorf("%w: material %s has no shader source", descriptor.ErrInvalidDescriptor, o.name)
	}

	mode := ModeStandard
	if desc.Raw {
		mode = ModeRaw
	}

	color := o.defaultColor
	if desc.Color != nil {
		color = *desc.Color
	}

	m := &Material{
		Name:        o.name,
		Shaders:     desc.Shader.Source,
		Mode:        mode,
		DoubleSide:  true,
		Transparent: true,
		Uniforms: map[string]*Uniform{
			UniformTime:    NewUniform(uniform.Float(0)),
			UniformColor:   NewUniform(uniform.Color(color)),
			UniformTexture: NewSampler(tex),
		},
	}

	for name, v := range desc.ExtraUniforms {
		if v.Kind.Components() == 0 {
			return nil, fmt.Errorf("%w: uniform %q has no value", descriptor.ErrInvalidDescriptor, name)
		}
		m.set(name, v)
	}
	for name, holder := range desc.DebugColors {
		if holder == nil {
			return nil, fmt.Errorf("%w: debug colour %q is empty", descriptor.ErrInvalidDescriptor, name)
		}
		m.set(name, uniform.Color(*holder))
	}
	return m, nil
}

// set writes v into an existing cell or creates a new one.
func (m *Material) set(name string, v uniform.Value) {
	if u, ok := m.Uniforms[name]; ok {
		u.Set(v)
		return
	}
	m.Uniforms[name] = NewUniform(v)
}
