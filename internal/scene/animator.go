package scene

// DefaultStagger offsets each mesh's clock by one second per index.
const DefaultStagger = 1.0

// Animator writes the frame time into every material's uTime.
type Animator struct {
	// Stagger is added per mesh index; zero animates all meshes in lockstep.
	Stagger float32
}

// Tick sets uTime = elapsed + index*Stagger on every mesh. Each call fully
// overwrites the previous value.
func (a Animator) Tick(s *Scene, elapsed float32) {
	for i, r := range s.meshes {
		r.Material.SetTime(elapsed + float32(i)*a.Stagger)
	}
}
