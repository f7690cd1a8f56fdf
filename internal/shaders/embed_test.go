package shaders

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		p, err := Lookup(name)
		require.NoError(t, err, name)
		assert.Contains(t, p.Vertex, "void main()", "%s vertex", name)
		assert.Contains(t, p.Fragment, "void main()", "%s fragment", name)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("nope")
	assert.ErrorIs(t, err, ErrUnknownShader)
}

func TestRawProgramsDeclareVersion(t *testing.T) {
	// test and test2 are raw programs; ragingSea relies on the engine prefix.
	for _, src := range []string{TestVertexShader, TestFragmentShader, Test2VertexShader, Test2FragmentShader} {
		assert.True(t, strings.HasPrefix(src, "#version 410 core"), "raw source does not start with #version: %.40q", src)
	}
	assert.NotContains(t, RagingSeaVertexShader, "#version")
}

func TestNamesSorted(t *testing.T) {
	assert.Equal(t, []string{"ragingSea", "test", "test2"}, Names())
}
