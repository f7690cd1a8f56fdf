package material

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/shadergrid/internal/descriptor"
)

func TestRawSourcesUntouched(t *testing.T) {
	table := descriptor.DefaultTable()
	m, err := Build(&table.Meshes[0], nil)
	require.NoError(t, err)

	v, f := m.ProgramSources()
	assert.Equal(t, table.Meshes[0].Shader.Source.Vertex, v)
	assert.Equal(t, table.Meshes[0].Shader.Source.Fragment, f)
}

func TestStandardSourcesPrefixed(t *testing.T) {
	table := descriptor.DefaultTable()
	m, err := Build(&table.Meshes[2], nil)
	require.NoError(t, err)

	v, f := m.ProgramSources()
	for _, src := range []string{v, f} {
		assert.True(t, strings.HasPrefix(src, GLSLVersion+"\n"))
		assert.Equal(t, 1, strings.Count(src, "#version"))
	}
	for _, decl := range []string{"in vec3 position;", "in vec2 uv;", "uniform mat4 projectionMatrix;", "uniform mat3 normalMatrix;"} {
		assert.Contains(t, v, decl)
	}
	assert.Contains(t, f, "out vec4 fragColor;")
	assert.True(t, strings.HasSuffix(v, table.Meshes[2].Shader.Source.Vertex))
	assert.Contains(t, v, "#line 1\n"+table.Meshes[2].Shader.Source.Vertex)
}

func TestProgramKeySharedByEqualSources(t *testing.T) {
	a, b := descriptor.DefaultTable(), descriptor.DefaultTable()
	ma, err := Build(&a.Meshes[2], nil)
	require.NoError(t, err)
	mb, err := Build(&b.Meshes[2], nil)
	require.NoError(t, err)
	assert.Equal(t, ma.ProgramKey(), mb.ProgramKey())

	// Same sources compiled raw are a different program.
	raw := b.Meshes[2]
	raw.Raw = true
	mr, err := Build(&raw, nil)
	require.NoError(t, err)
	assert.NotEqual(t, ma.ProgramKey(), mr.ProgramKey())
}
