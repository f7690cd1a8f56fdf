package geometry

import (
	"fmt"
	"math/rand/v2"

	"github.com/Faultbox/shadergrid/internal/descriptor"
)

// NewPlane builds a width x height plane in the XY plane facing +Z, split
// into segX x segY quads. Vertices run row by row from the top-left corner,
// so there are (segX+1)*(segY+1) of them; UV (0,0) is the bottom-left.
func NewPlane(width, height float32, segX, segY int) *Mesh {
	segX = max(segX, 1)
	segY = max(segY, 1)

	halfW := width / 2
	halfH := height / 2
	segW := width / float32(segX)
	segH := height / float32(segY)
	cols := segX + 1

	vertices := make([]Vertex, 0, cols*(segY+1))
	for iy := 0; iy <= segY; iy++ {
		y := float32(iy)*segH - halfH
		for ix := 0; ix <= segX; ix++ {
			x := float32(ix)*segW - halfW
			vertices = append(vertices, Vertex{
				Position: [3]float32{x, -y, 0},
				Normal:   [3]float32{0, 0, 1},
				UV:       [2]float32{float32(ix) / float32(segX), 1 - float32(iy)/float32(segY)},
			})
		}
	}

	// Two counter-clockwise triangles per quad.
	indices := make([]uint32, 0, segX*segY*6)
	for iy := 0; iy < segY; iy++ {
		for ix := 0; ix < segX; ix++ {
			a := uint32(ix + cols*iy)
			b := uint32(ix + cols*(iy+1))
			c := uint32(ix + 1 + cols*(iy+1))
			d := uint32(ix + 1 + cols*iy)
			indices = append(indices, a, b, d, b, c, d)
		}
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Bounds: Bounds{
			Min: [3]float32{-halfW, -halfH, 0},
			Max: [3]float32{halfW, halfH, 0},
		},
	}
}

// Build creates the descriptor's plane with Subdivision segments on each
// axis, then generates its declared auxiliary attributes from rng.
func Build(desc *descriptor.Mesh, width, height float32, rng *rand.Rand) (*Mesh, error) {
	if desc.Subdivision <= 0 {
		return nil, fmt.Errorf("%w: subdivision must be positive, got %d", descriptor.ErrInvalidDescriptor, desc.Subdivision)
	}
	mesh := NewPlane(width, height, desc.Subdivision, desc.Subdivision)

	for _, a := range desc.Attributes {
		if _, exists := mesh.Attribute(a.Name); exists {
			return nil, fmt.Errorf("%w: duplicate attribute %q", descriptor.ErrInvalidDescriptor, a.Name)
		}
		switch a.Source {
		case descriptor.SourceRandom:
			mesh.Attributes = append(mesh.Attributes, Attribute{
				Name: a.Name,
				Size: 1,
				Data: randomValues(mesh.VertexCount(), rng),
			})
		default:
			return nil, fmt.Errorf("%w: attribute %q has unknown source %q", descriptor.ErrInvalidDescriptor, a.Name, a.Source)
		}
	}
	return mesh, nil
}

// randomValues returns n samples uniform in [0,1).
func randomValues(n int, rng *rand.Rand) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = rng.Float32()
	}
	return out
}
