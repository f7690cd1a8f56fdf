// Package shaders provides the embedded GLSL programs shipped with shadergrid.
package shaders

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownShader is returned by Lookup for names with no embedded program.
var ErrUnknownShader = errors.New("unknown shader")

// TestVertexShader displaces a flag along Z with a per-vertex random bump.
//
//go:embed test.vert
var TestVertexShader string

// TestFragmentShader samples the shared texture, shaded by the flag elevation.
//
//go:embed test.frag
var TestFragmentShader string

//go:embed test2.vert
var Test2VertexShader string

//go:embed test2.frag
var Test2FragmentShader string

// RagingSeaVertexShader builds layered sine waves plus noise turbulence.
// It is written against the standard prefix, not as a raw program.
//
//go:embed ragingSea.vert
var RagingSeaVertexShader string

// RagingSeaFragmentShader mixes depth and surface colours by elevation.
//
//go:embed ragingSea.frag
var RagingSeaFragmentShader string

// Pair is a vertex and fragment source.
type Pair struct {
	Vertex   string
	Fragment string
}

var builtin = map[string]Pair{
	"test":      {Vertex: TestVertexShader, Fragment: TestFragmentShader},
	"test2":     {Vertex: Test2VertexShader, Fragment: Test2FragmentShader},
	"ragingSea": {Vertex: RagingSeaVertexShader, Fragment: RagingSeaFragmentShader},
}

// Lookup returns the embedded program registered under name.
func Lookup(name string) (Pair, error) {
	p, ok := builtin[name]
	if !ok {
		return Pair{}, fmt.Errorf("%w: %q", ErrUnknownShader, name)
	}
	return p, nil
}

// Names lists the embedded programs in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
