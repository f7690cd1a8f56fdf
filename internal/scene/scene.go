// Package scene assembles descriptor tables into positioned renderables and
// drives their time uniforms.
package scene

import (
	"errors"

	"github.com/Faultbox/shadergrid/internal/descriptor"
	"github.com/Faultbox/shadergrid/internal/engine/geometry"
	"github.com/Faultbox/shadergrid/internal/engine/material"
	"github.com/Faultbox/shadergrid/internal/uniform"
	"github.com/Faultbox/shadergrid/pkg/math"
)

// ErrEmptyTable is returned by Assemble for a table with no meshes.
var ErrEmptyTable = errors.New("empty descriptor table")

// Renderable is one mesh of the scene: its geometry, material and placement.
type Renderable struct {
	Index      int
	Name       string
	Descriptor *descriptor.Mesh
	Geometry   *geometry.Mesh
	Material   *material.Material

	Position math.Vec3
	// Rotation is an XYZ Euler rotation in radians.
	Rotation math.Vec3
}

// ModelMatrix returns T * Rx * Ry * Rz.
func (r *Renderable) ModelMatrix() math.Mat4 {
	t := math.Translate(r.Position.X, r.Position.Y, r.Position.Z)
	return t.Mul(math.FromEuler(r.Rotation))
}

// Sink receives each renderable once it is placed.
type Sink interface {
	Add(r *Renderable) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(r *Renderable) error

// Add calls f(r).
func (f SinkFunc) Add(r *Renderable) error {
	return f(r)
}

// Scene is the ordered registry of renderables built from one table.
type Scene struct {
	table  descriptor.Table
	meshes []*Renderable
}

// Meshes returns the renderables in table order.
func (s *Scene) Meshes() []*Renderable {
	return s.meshes
}

// Len returns the number of renderables.
func (s *Scene) Len() int {
	return len(s.meshes)
}

// Snapshot returns a copy of the source table carrying the current uniform
// values, suitable for saving as a scene file.
func (s *Scene) Snapshot() descriptor.Table {
	out := descriptor.Table{Meshes: make([]descriptor.Mesh, len(s.table.Meshes))}
	for i, src := range s.table.Meshes {
		m := src
		m.Attributes = append([]descriptor.Attribute(nil), src.Attributes...)
		m.Controls = append([]descriptor.Control(nil), src.Controls...)
		if src.Color != nil {
			c := *src.Color
			m.Color = &c
		}
		if src.PostTransform != nil {
			pt := *src.PostTransform
			m.PostTransform = &pt
		}

		mat := s.meshes[i].Material
		if src.ExtraUniforms != nil {
			m.ExtraUniforms = make(map[string]uniform.Value, len(src.ExtraUniforms))
			for name, v := range src.ExtraUniforms {
				if cell, ok := mat.Uniform(name); ok && cell.Kind.Components() > 0 {
					v = cell.Value()
				}
				m.ExtraUniforms[name] = v
			}
		}
		if src.DebugColors != nil {
			m.DebugColors = make(map[string]*uniform.RGB, len(src.DebugColors))
			for name, holder := range src.DebugColors {
				c := *holder
				m.DebugColors[name] = &c
			}
		}
		out.Meshes[i] = m
	}
	return out
}
