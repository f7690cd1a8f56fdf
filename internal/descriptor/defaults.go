package descriptor

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/shadergrid/internal/shaders"
	"github.com/Faultbox/shadergrid/internal/uniform"
	"github.com/Faultbox/shadergrid/pkg/math"
)

// DefaultTable returns the built-in three-mesh scene: a waving flag with
// random bumps, a plain raw-shader plane and a raging sea lying face-up.
// Every call returns fresh holders.
func DefaultTable() Table {
	color := uniform.MustParseColor("rgb(50%, 80%, 100%)")
	depth := uniform.MustParseColor("#002775")
	surface := uniform.MustParseColor("#b0abf8")

	return Table{Meshes: []Mesh{
		{
			Name:        "flag",
			Subdivision: 32,
			Shader:      builtinShader("test"),
			Raw:         true,
			Attributes:  []Attribute{{Name: "aRandom", Source: SourceRandom}},
			ExtraUniforms: map[string]uniform.Value{
				"uFrequency": uniform.Vec2(15, 7.5),
			},
			Controls: []Control{
				{Uniform: "uFrequency", Property: "x", Min: 0, Max: 20, Step: 0.1, Label: "mesh1_frequencyX"},
				{Uniform: "uFrequency", Property: "y", Min: 0, Max: 20, Step: 0.1, Label: "mesh1_frequencyY"},
			},
		},
		{
			Name:        "rings",
			Subdivision: 32,
			Shader:      builtinShader("test2"),
			Raw:         true,
		},
		{
			Name:        "ragingSea",
			Subdivision: 256,
			Shader:      builtinShader("ragingSea"),
			Color:       &color,
			ExtraUniforms: map[string]uniform.Value{
				"uWaveFrequency":    uniform.Vec2(5, 6.5),
				"uWaveAmplitude":    uniform.Float(0.165),
				"uWaveSpeed":        uniform.Float(2),
				"uSmWaveFrequency":  uniform.Float(8.5),
				"uSmWaveAmplitude":  uniform.Float(0.09),
				"uSmWaveSpeed":      uniform.Float(0.8),
				"uSmWaveIterations": uniform.Float(4),
				"uColorOffset":      uniform.Float(0.25),
				"uColorMultiplier":  uniform.Float(5.5),
			},
			DebugColors: map[string]*uniform.RGB{
				"uWaveDepthColor":   &depth,
				"uWaveSurfaceColor": &surface,
			},
			Controls: []Control{
				{Uniform: "uWaveAmplitude", Property: "value", Min: 0, Max: 1, Step: 0.001, Label: "mesh3_uWaveAmplitude"},
				{Uniform: "uWaveFrequency", Property: "x", Min: 0, Max: 10, Step: 0.1, Label: "mesh3_uWaveFrequencyX"},
				{Uniform: "uWaveFrequency", Property: "y", Min: 0, Max: 10, Step: 0.1, Label: "mesh3_uWaveFrequencyZ"},
				{Uniform: "uWaveSpeed", Property: "value", Min: 0, Max: 5, Step: 0.01, Label: "mesh3_uWaveSpeed"},
				{Uniform: "uSmWaveAmplitude", Property: "value", Min: 0, Max: 2, Step: 0.001, Label: "mesh3_uSmWaveAmplitude"},
				{Uniform: "uSmWaveFrequency", Property: "value", Min: 0, Max: 30, Step: 0.01, Label: "mesh3_uSmWaveFrequency"},
				{Uniform: "uSmWaveSpeed", Property: "value", Min: 0, Max: 3, Step: 0.01, Label: "mesh3_uSmWaveSpeed"},
				{Uniform: "uSmWaveIterations", Property: "value", Min: 0, Max: 8, Step: 1, Label: "mesh3_uSmWaveIterations"},
				{Type: ControlColor, Uniform: "uWaveDepthColor", Label: "mesh3_uWaveDepthColor"},
				{Type: ControlColor, Uniform: "uWaveSurfaceColor", Label: "mesh3_uWaveSurfaceColor"},
				{Uniform: "uColorOffset", Property: "value", Min: 0, Max: 2, Step: 0.001, Label: "mesh3_uColorOffset"},
				{Uniform: "uColorMultiplier", Property: "value", Min: 0, Max: 10, Step: 0.1, Label: "mesh3_uColorMultiplier"},
			},
			PostTransform: &Transform{Rotation: math.Vec3{X: -math32.Pi / 2}},
		},
	}}
}

func builtinShader(name string) Shader {
	p, err := shaders.Lookup(name)
	if err != nil {
		panic(err)
	}
	return Shader{Name: name, Source: p}
}
