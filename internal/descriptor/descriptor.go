// Package descriptor holds the declarative mesh table a scene is built from.
//
// Each Mesh states everything the builders need, including the one-off
// specialisations (auxiliary attributes, extra uniforms, debug colours,
// panel controls and a post-placement transform), so no builder has to
// branch on a table index.
package descriptor

import (
	"errors"
	"fmt"

	"github.com/Faultbox/shadergrid/internal/shaders"
	"github.com/Faultbox/shadergrid/internal/uniform"
	"github.com/Faultbox/shadergrid/pkg/math"
)

// ErrInvalidDescriptor marks a table that cannot be built.
var ErrInvalidDescriptor = errors.New("invalid descriptor")

// Auxiliary attribute sources.
const (
	SourceRandom = "random"
)

// Control types.
const (
	ControlNumber = "number"
	ControlColor  = "color"
)

// Attribute names reserved for the plane geometry itself.
var builtinAttributes = map[string]bool{"position": true, "normal": true, "uv": true}

// Table is the ordered list of meshes in a scene. Order decides grid placement.
type Table struct {
	Meshes []Mesh `yaml:"meshes"`
}

// Mesh describes one visual element.
type Mesh struct {
	Name        string `yaml:"name,omitempty"`
	Subdivision int    `yaml:"subdivision"`
	Shader      Shader `yaml:",inline"`
	Raw         bool   `yaml:"raw"`

	// Color is the uColor seed; nil falls back to the material default.
	Color *uniform.RGB `yaml:"color,omitempty"`

	Attributes    []Attribute              `yaml:"attributes,omitempty"`
	ExtraUniforms map[string]uniform.Value `yaml:"uniforms,omitempty"`
	// DebugColors are live colour holders keyed by the uniform they drive.
	DebugColors   map[string]*uniform.RGB `yaml:"debug_colors,omitempty"`
	Controls      []Control               `yaml:"controls,omitempty"`
	PostTransform *Transform              `yaml:"post_transform,omitempty"`
}

// Shader names a built-in program or a pair of source files. Source is
// filled in by Resolve.
type Shader struct {
	Name         string       `yaml:"shader,omitempty"`
	VertexPath   string       `yaml:"vertex,omitempty"`
	FragmentPath string       `yaml:"fragment,omitempty"`
	Source       shaders.Pair `yaml:"-"`
}

// Attribute is a per-vertex auxiliary attribute generated at build time.
type Attribute struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
}

// Control is one curated panel registration.
type Control struct {
	Type     string  `yaml:"type,omitempty"`
	Uniform  string  `yaml:"uniform"`
	Property string  `yaml:"property,omitempty"`
	Min      float32 `yaml:"min"`
	Max      float32 `yaml:"max"`
	Step     float32 `yaml:"step,omitempty"`
	Label    string  `yaml:"label,omitempty"`
}

// Kind returns the control type, defaulting to number.
func (c Control) Kind() string {
	if c.Type == "" {
		return ControlNumber
	}
	return c.Type
}

// DisplayLabel returns Label or a name derived from the target.
func (c Control) DisplayLabel() string {
	if c.Label != "" {
		return c.Label
	}
	if c.Property == "" || c.Property == "value" {
		return c.Uniform
	}
	return c.Uniform + "." + c.Property
}

// Transform is applied after grid placement.
type Transform struct {
	// Rotation is an XYZ Euler rotation in radians.
	Rotation math.Vec3 `yaml:"rotation"`
}

// Label returns the mesh name, or its index when unnamed.
func (m *Mesh) Label(index int) string {
	if m.Name != "" {
		return m.Name
	}
	return fmt.Sprintf("mesh%d", index+1)
}

// Validate checks the table without touching GPU or panel state.
func (t Table) Validate() error {
	for i := range t.Meshes {
		if err := t.Meshes[i].validate(); err != nil {
			return fmt.Errorf("mesh %d (%s): %w", i, t.Meshes[i].Label(i), err)
		}
	}
	return nil
}

func (m *Mesh) validate() error {
	if m.Subdivision <= 0 {
		return fmt.Errorf("%w: subdivision must be positive, got %d", ErrInvalidDescriptor, m.Subdivision)
	}
	if m.Shader.Source.Vertex == "" || m.Shader.Source.Fragment == "" {
		return fmt.Errorf("%w: shader sources not resolved", ErrInvalidDescriptor)
	}

	seen := make(map[string]bool, len(m.Attributes))
	for _, a := range m.Attributes {
		switch {
		case a.Name == "":
			return fmt.Errorf("%w: attribute without a name", ErrInvalidDescriptor)
		case builtinAttributes[a.Name]:
			return fmt.Errorf("%w: attribute %q shadows a plane attribute", ErrInvalidDescriptor, a.Name)
		case seen[a.Name]:
			return fmt.Errorf("%w: duplicate attribute %q", ErrInvalidDescriptor, a.Name)
		case a.Source != SourceRandom:
			return fmt.Errorf("%w: attribute %q has unknown source %q", ErrInvalidDescriptor, a.Name, a.Source)
		}
		seen[a.Name] = true
	}

	for name, v := range m.ExtraUniforms {
		if v.Kind.Components() == 0 {
			return fmt.Errorf("%w: uniform %q has no value", ErrInvalidDescriptor, name)
		}
	}
	for name, holder := range m.DebugColors {
		if holder == nil {
			return fmt.Errorf("%w: debug colour %q is empty", ErrInvalidDescriptor, name)
		}
	}

	for _, c := range m.Controls {
		if c.Uniform == "" {
			return fmt.Errorf("%w: control without a uniform", ErrInvalidDescriptor)
		}
		switch c.Kind() {
		case ControlNumber:
			if c.Min > c.Max {
				return fmt.Errorf("%w: control %s: min %g > max %g", ErrInvalidDescriptor, c.DisplayLabel(), c.Min, c.Max)
			}
			if c.Step <= 0 {
				return fmt.Errorf("%w: control %s: step must be positive", ErrInvalidDescriptor, c.DisplayLabel())
			}
		case ControlColor:
			if _, ok := m.DebugColors[c.Uniform]; !ok {
				return fmt.Errorf("%w: colour control %s has no debug colour holder", ErrInvalidDescriptor, c.DisplayLabel())
			}
		default:
			return fmt.Errorf("%w: control %s has unknown type %q", ErrInvalidDescriptor, c.DisplayLabel(), c.Type)
		}
	}
	return nil
}
