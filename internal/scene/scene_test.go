package scene

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/shadergrid/internal/descriptor"
	"github.com/Faultbox/shadergrid/internal/engine/material"
	"github.com/Faultbox/shadergrid/internal/engine/texture"
	"github.com/Faultbox/shadergrid/internal/layout"
	"github.com/Faultbox/shadergrid/internal/panel"
	"github.com/Faultbox/shadergrid/internal/uniform"
	"github.com/Faultbox/shadergrid/pkg/math"
)

const eps = 1e-5

func testGrid(policy layout.Policy) layout.Grid {
	return layout.Grid{
		MeshWidth:       1,
		MeshHeight:      1,
		Spacing:         0.1,
		VerticalSpacing: 0.1,
		MaxPerRow:       2,
		Policy:          policy,
	}
}

func testOptions(sink Sink) Options {
	return Options{
		Grid:    testGrid(layout.PolicyStack),
		Texture: &texture.Texture{Path: "flag.jpg"},
		Sink:    sink,
		Rand:    rand.New(rand.NewPCG(7, 11)),
	}
}

func TestAssembleDefaultTable(t *testing.T) {
	var registered []*Renderable
	sink := SinkFunc(func(r *Renderable) error {
		registered = append(registered, r)
		return nil
	})

	s, err := Assemble(context.Background(), descriptor.DefaultTable(), testOptions(sink))
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, s.Meshes(), registered)

	wantPos := []math.Vec3{{X: -0.55}, {X: 0.55}, {Y: -1.1}}
	for i, r := range s.Meshes() {
		assert.Equal(t, i, r.Index)
		assert.InDelta(t, wantPos[i].X, r.Position.X, eps, "mesh %d x", i)
		assert.InDelta(t, wantPos[i].Y, r.Position.Y, eps, "mesh %d y", i)
		assert.Zero(t, r.Position.Z)
		assert.NotNil(t, r.Geometry)
		assert.NotNil(t, r.Material)
	}

	assert.Equal(t, math.Vec3{}, s.Meshes()[0].Rotation)
	assert.Equal(t, math.Vec3{}, s.Meshes()[1].Rotation)
	assert.Equal(t, math.Vec3{X: -math32.Pi / 2}, s.Meshes()[2].Rotation)

	_, ok := s.Meshes()[0].Geometry.Attribute("aRandom")
	assert.True(t, ok)
	_, ok = s.Meshes()[1].Geometry.Attribute("aRandom")
	assert.False(t, ok)

	// Every material shares the one texture.
	tex := s.Meshes()[0].Material.Texture()
	for _, r := range s.Meshes() {
		assert.Same(t, tex, r.Material.Texture())
	}
}

func TestAssembleCenteredPolicy(t *testing.T) {
	opts := testOptions(nil)
	opts.Grid = testGrid(layout.PolicyCenter)

	s, err := Assemble(context.Background(), descriptor.DefaultTable(), opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.55, s.Meshes()[0].Position.Y, eps)
	assert.InDelta(t, -0.55, s.Meshes()[2].Position.Y, eps)
}

func TestModelMatrix(t *testing.T) {
	r := &Renderable{
		Position: math.Vec3{X: 1, Y: 2},
		Rotation: math.Vec3{X: -math32.Pi / 2},
	}
	m := r.ModelMatrix()

	// The face-up plane's normal (+Z) points to +Y and the origin moves to Position.
	up := m.TransformVec3(math.Vec3{Z: 1}).Sub(r.Position)
	assert.InDelta(t, 0, up.X, eps)
	assert.InDelta(t, 1, up.Y, eps)
	assert.InDelta(t, 0, up.Z, eps)

	origin := m.TransformVec3(math.Vec3{})
	assert.Equal(t, r.Position, origin)

	plain := (&Renderable{}).ModelMatrix()
	assert.Equal(t, math.Identity(), plain)
}

func TestAssembleBindsPanel(t *testing.T) {
	rec := &recordingPanel{}
	opts := testOptions(nil)
	opts.Panel = rec

	_, err := Assemble(context.Background(), descriptor.DefaultTable(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"flag", "ragingSea"}, rec.sections)
	assert.Equal(t, 12, rec.numbers)
	assert.Equal(t, 2, rec.colors)
}

func TestAssembleErrors(t *testing.T) {
	ctx := context.Background()

	_, err := Assemble(ctx, descriptor.Table{}, testOptions(nil))
	assert.ErrorIs(t, err, ErrEmptyTable)

	bad := descriptor.DefaultTable()
	bad.Meshes[1].Subdivision = 0
	_, err = Assemble(ctx, bad, testOptions(nil))
	assert.ErrorIs(t, err, descriptor.ErrInvalidDescriptor)

	opts := testOptions(nil)
	opts.Grid.MaxPerRow = 0
	_, err = Assemble(ctx, descriptor.DefaultTable(), opts)
	assert.ErrorIs(t, err, layout.ErrInvalidLayout)

	missing := descriptor.DefaultTable()
	missing.Meshes[0].Controls[0].Uniform = "uMissing"
	_, err = Assemble(ctx, missing, testOptions(nil))
	assert.ErrorIs(t, err, panel.ErrUnknownUniform)

	boom := errors.New("boom")
	_, err = Assemble(ctx, descriptor.DefaultTable(), testOptions(SinkFunc(func(*Renderable) error { return boom })))
	assert.ErrorIs(t, err, boom)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = Assemble(cancelled, descriptor.DefaultTable(), testOptions(nil))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnimatorOverwrites(t *testing.T) {
	s, err := Assemble(context.Background(), descriptor.DefaultTable(), testOptions(nil))
	require.NoError(t, err)

	a := Animator{Stagger: 0}
	a.Tick(s, 2)
	a.Tick(s, 5)
	for _, r := range s.Meshes() {
		assert.Equal(t, float32(5), r.Material.Time())
	}
}

func TestAnimatorStagger(t *testing.T) {
	s, err := Assemble(context.Background(), descriptor.DefaultTable(), testOptions(nil))
	require.NoError(t, err)

	cells := make([]*material.Uniform, s.Len())
	for i, r := range s.Meshes() {
		cells[i] = r.Material.Uniforms[material.UniformTime]
	}

	Animator{Stagger: DefaultStagger}.Tick(s, 0.5)
	for i, r := range s.Meshes() {
		assert.Equal(t, 0.5+float32(i), r.Material.Time())
		assert.Same(t, cells[i], r.Material.Uniforms[material.UniformTime])
	}
}

func TestSnapshotCarriesLiveValues(t *testing.T) {
	table := descriptor.DefaultTable()
	s, err := Assemble(context.Background(), table, testOptions(nil))
	require.NoError(t, err)

	sea := s.Meshes()[2]
	sea.Material.Uniforms["uWaveSpeed"].SetFloat(3.5)
	*sea.Descriptor.DebugColors["uWaveDepthColor"] = uniform.RGB{1, 0, 0}

	snap := s.Snapshot()
	require.Len(t, snap.Meshes, 3)
	assert.Equal(t, uniform.Float(3.5), snap.Meshes[2].ExtraUniforms["uWaveSpeed"])
	assert.Equal(t, uniform.RGB{1, 0, 0}, *snap.Meshes[2].DebugColors["uWaveDepthColor"])

	// The snapshot is detached from the live scene.
	snap.Meshes[2].DebugColors["uWaveDepthColor"][1] = 1
	assert.Equal(t, uniform.RGB{1, 0, 0}, *sea.Descriptor.DebugColors["uWaveDepthColor"])
	// uTime is not a descriptor uniform and stays out of the file.
	assert.NotContains(t, snap.Meshes[2].ExtraUniforms, material.UniformTime)
}

type recordingPanel struct {
	sections []string
	numbers  int
	colors   int
}

func (p *recordingPanel) Section(title string) { p.sections = append(p.sections, title) }

func (p *recordingPanel) AddNumber(*float32, float32, float32, float32, string) { p.numbers++ }

func (p *recordingPanel) AddColor(*uniform.RGB, string, func()) { p.colors++ }
