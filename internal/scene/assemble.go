package scene

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/Faultbox/shadergrid/internal/descriptor"
	"github.com/Faultbox/shadergrid/internal/engine/geometry"
	"github.com/Faultbox/shadergrid/internal/engine/material"
	"github.com/Faultbox/shadergrid/internal/engine/texture"
	"github.com/Faultbox/shadergrid/internal/layout"
	"github.com/Faultbox/shadergrid/internal/logger"
	"github.com/Faultbox/shadergrid/internal/panel"
	"github.com/Faultbox/shadergrid/internal/uniform"
	"github.com/Faultbox/shadergrid/pkg/math"
)

// Options are the collaborators Assemble builds against.
type Options struct {
	Grid layout.Grid
	// Texture is shared by every material's uTexture. May be nil.
	Texture *texture.Texture
	// Panel receives controls; nil means panel.Discard.
	Panel panel.Panel
	// Sink receives placed renderables; nil registers nothing.
	Sink Sink
	// Rand feeds random auxiliary attributes; nil seeds from the runtime.
	Rand *rand.Rand
	// DefaultColor is uColor for meshes without a colour.
	DefaultColor uniform.RGB
}

// Assemble builds every mesh in table. All geometries are built first, then
// all materials, then controls are bound, then each mesh is placed on the
// grid, given its declared post transform and handed to the sink.
func Assemble(ctx context.Context, table descriptor.Table, opts Options) (*Scene, error) {
	n := len(table.Meshes)
	if n == 0 {
		return nil, ErrEmptyTable
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Grid.Validate(n); err != nil {
		return nil, err
	}
	if opts.Panel == nil {
		opts.Panel = panel.Discard
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s := &Scene{table: table, meshes: make([]*Renderable, n)}
	for i := range table.Meshes {
		desc := &s.table.Meshes[i]
		s.meshes[i] = &Renderable{Index: i, Name: desc.Label(i), Descriptor: desc}
	}

	for _, r := range s.meshes {
		g, err := geometry.Build(r.Descriptor, opts.Grid.MeshWidth, opts.Grid.MeshHeight, opts.Rand)
		if err != nil {
			return nil, fmt.Errorf("build geometry for %s: %w", r.Name, err)
		}
		r.Geometry = g
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, r := range s.meshes {
		m, err := material.Build(r.Descriptor, opts.Texture,
			material.WithName(r.Name),
			material.WithDefaultColor(opts.DefaultColor))
		if err != nil {
			return nil, fmt.Errorf("build material for %s: %w", r.Name, err)
		}
		r.Material = m
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, r := range s.meshes {
		if err := panel.Bind(opts.Panel, r.Name, r.Descriptor, r.Material); err != nil {
			return nil, fmt.Errorf("bind controls for %s: %w", r.Name, err)
		}
	}

	positions, err := opts.Grid.Positions(n)
	if err != nil {
		return nil, err
	}
	for i, r := range s.meshes {
		r.Position = math.Vec3{X: positions[i].X, Y: positions[i].Y}
		if pt := r.Descriptor.PostTransform; pt != nil {
			r.Rotation = pt.Rotation
		}
		if opts.Sink != nil {
			if err := opts.Sink.Add(r); err != nil {
				return nil, fmt.Errorf("register %s: %w", r.Name, err)
			}
		}
		logger.Debug("mesh placed",
			zap.String("mesh", r.Name),
			zap.Int("vertices", r.Geometry.VertexCount()),
			zap.Stringer("mode", r.Material.Mode),
			zap.Float32("x", r.Position.X),
			zap.Float32("y", r.Position.Y))
	}

	logger.Info("scene assembled",
		zap.Int("meshes", n),
		zap.Stringer("policy", opts.Grid.Policy),
		zap.Int("max_per_row", opts.Grid.MaxPerRow))
	return s, nil
}
