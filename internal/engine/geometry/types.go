// Package geometry builds the subdivided planes meshes are drawn with.
package geometry

// Vertex is one plane vertex, laid out for interleaved GPU upload.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
}

// Attribute is an auxiliary per-vertex stream stored outside Vertex.
type Attribute struct {
	Name string
	Size int       // components per vertex
	Data []float32 // len = Size * vertex count
}

// Mesh holds plane geometry ready for GPU upload.
type Mesh struct {
	Vertices   []Vertex
	Indices    []uint32
	Attributes []Attribute
	Bounds     Bounds
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Attribute returns the auxiliary attribute with the given name.
func (m *Mesh) Attribute(name string) (*Attribute, bool) {
	for i := range m.Attributes {
		if m.Attributes[i].Name == name {
			return &m.Attributes[i], true
		}
	}
	return nil, false
}
