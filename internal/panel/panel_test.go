package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/shadergrid/internal/descriptor"
	"github.com/Faultbox/shadergrid/internal/engine/material"
	"github.com/Faultbox/shadergrid/internal/uniform"
)

type numberControl struct {
	value          *float32
	min, max, step float32
	label          string
}

type colorControl struct {
	holder   *uniform.RGB
	label    string
	onChange func()
}

type fakePanel struct {
	sections []string
	numbers  []numberControl
	colors   []colorControl
}

func (f *fakePanel) Section(title string) { f.sections = append(f.sections, title) }

func (f *fakePanel) AddNumber(value *float32, min, max, step float32, label string) {
	f.numbers = append(f.numbers, numberControl{value, min, max, step, label})
}

func (f *fakePanel) AddColor(holder *uniform.RGB, label string, onChange func()) {
	f.colors = append(f.colors, colorControl{holder, label, onChange})
}

func build(t *testing.T, desc *descriptor.Mesh) *material.Material {
	t.Helper()
	m, err := material.Build(desc, nil)
	require.NoError(t, err)
	return m
}

func TestBindDefaultTable(t *testing.T) {
	table := descriptor.DefaultTable()
	p := &fakePanel{}

	for i := range table.Meshes {
		desc := &table.Meshes[i]
		require.NoError(t, Bind(p, desc.Label(i), desc, build(t, desc)))
	}

	// The plain mesh has no controls and gets no section.
	assert.Equal(t, []string{"flag", "ragingSea"}, p.sections)
	assert.Len(t, p.numbers, 12)
	assert.Len(t, p.colors, 2)
	assert.Equal(t, "mesh1_frequencyX", p.numbers[0].label)
	assert.Equal(t, "mesh3_uWaveDepthColor", p.colors[0].label)
}

func TestNumberControlWritesIntoCell(t *testing.T) {
	table := descriptor.DefaultTable()
	desc := &table.Meshes[0]
	mat := build(t, desc)
	p := &fakePanel{}
	require.NoError(t, Bind(p, "flag", desc, mat))

	require.Len(t, p.numbers, 2)
	x := p.numbers[0]
	assert.Equal(t, float32(0), x.min)
	assert.Equal(t, float32(20), x.max)
	assert.Equal(t, float32(0.1), x.step)
	assert.Equal(t, float32(15), *x.value)

	*x.value = 3
	*p.numbers[1].value = 4
	assert.Equal(t, uniform.Vec2(3, 4), mat.Uniforms["uFrequency"].Value())
}

func TestColorRoundTrip(t *testing.T) {
	table := descriptor.DefaultTable()
	desc := &table.Meshes[2]
	mat := build(t, desc)
	p := &fakePanel{}
	require.NoError(t, Bind(p, "ragingSea", desc, mat))

	cell := mat.Uniforms["uWaveSurfaceColor"]
	var surface colorControl
	for _, c := range p.colors {
		if c.holder == desc.DebugColors["uWaveSurfaceColor"] {
			surface = c
		}
	}
	require.NotNil(t, surface.onChange)

	want := uniform.RGB{0.25, 0.5, 0.75}
	*surface.holder = want
	surface.onChange()

	assert.Same(t, cell, mat.Uniforms["uWaveSurfaceColor"])
	assert.Equal(t, uniform.Color(want), cell.Value())
}

func TestColorChangeWaitsForCallback(t *testing.T) {
	table := descriptor.DefaultTable()
	desc := &table.Meshes[2]
	mat := build(t, desc)
	before := mat.Uniforms["uWaveDepthColor"].Value()

	p := &fakePanel{}
	require.NoError(t, Bind(p, "ragingSea", desc, mat))
	*p.colors[0].holder = uniform.RGB{1, 1, 1}

	assert.Equal(t, before, mat.Uniforms["uWaveDepthColor"].Value())
}

func TestBindErrors(t *testing.T) {
	tests := []struct {
		name    string
		control descriptor.Control
		want    error
	}{
		{"missing uniform", descriptor.Control{Uniform: "uNope", Property: "value", Max: 1, Step: 0.1}, ErrUnknownUniform},
		{"bad property", descriptor.Control{Uniform: "uWaveSpeed", Property: "x", Max: 1, Step: 0.1}, ErrInvalidControl},
		{"vector needs property", descriptor.Control{Uniform: "uWaveFrequency", Max: 1, Step: 0.1}, ErrInvalidControl},
		{"inverted range", descriptor.Control{Uniform: "uWaveSpeed", Property: "value", Min: 2, Max: 1, Step: 0.1}, ErrInvalidControl},
		{"zero step", descriptor.Control{Uniform: "uWaveSpeed", Property: "value", Max: 1}, ErrInvalidControl},
		{"colour on float", descriptor.Control{Type: descriptor.ControlColor, Uniform: "uWaveSpeed"}, ErrInvalidControl},
		{"colour without holder", descriptor.Control{Type: descriptor.ControlColor, Uniform: "uColor"}, ErrInvalidControl},
		{"unknown type", descriptor.Control{Type: "knob", Uniform: "uWaveSpeed"}, ErrInvalidControl},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := descriptor.DefaultTable()
			desc := &table.Meshes[2]
			desc.Controls = append(desc.Controls, tt.control)
			mat := build(t, desc)

			p := &fakePanel{}
			err := Bind(p, "ragingSea", desc, mat)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, p.sections, "nothing registered on error")
			assert.Empty(t, p.numbers)
		})
	}
}

func TestDiscardValidates(t *testing.T) {
	table := descriptor.DefaultTable()
	desc := &table.Meshes[0]
	mat := build(t, desc)
	require.NoError(t, Bind(Discard, "flag", desc, mat))

	desc.Controls[0].Uniform = "uMissing"
	assert.ErrorIs(t, Bind(Discard, "flag", desc, mat), ErrUnknownUniform)
}

func TestSnap(t *testing.T) {
	tests := []struct {
		name              string
		v, min, max, step float32
		want              float32
	}{
		{"on step", 1.5, 0, 20, 0.5, 1.5},
		{"rounds down", 1.24, 0, 20, 0.5, 1},
		{"rounds up", 1.26, 0, 20, 0.5, 1.5},
		{"offset min", 2.4, 1, 5, 1, 2},
		{"below min", -3, 0, 20, 0.1, 0},
		{"above max", 25, 0, 20, 0.1, 20},
		{"no step", 0.123, 0, 1, 0, 0.123},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Snap(tt.v, tt.min, tt.max, tt.step), 1e-5)
		})
	}
}
