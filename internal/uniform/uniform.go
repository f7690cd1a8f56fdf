// Package uniform defines the typed values stored in shader uniform cells and
// their scene-file representation.
package uniform

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is returned when a scene-file literal cannot become a uniform value.
var ErrInvalidValue = errors.New("invalid uniform value")

// Kind identifies the GLSL type a value uploads as.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindFloat        // float
	KindVec2         // vec2
	KindVec3         // vec3
	KindColor        // vec3, edited as a colour
	KindSampler      // sampler2D
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindVec2:
		return "vec2"
	case KindVec3:
		return "vec3"
	case KindColor:
		return "color"
	case KindSampler:
		return "sampler2D"
	default:
		return "invalid"
	}
}

// Components returns how many floats of Value.V are meaningful.
func (k Kind) Components() int {
	switch k {
	case KindFloat:
		return 1
	case KindVec2:
		return 2
	case KindVec3, KindColor:
		return 3
	default:
		return 0
	}
}

// Value is an initial or current uniform value. Samplers carry no data here;
// the texture handle lives on the material's uniform cell.
type Value struct {
	Kind Kind
	V    [3]float32
}

// Float returns a float value.
func Float(f float32) Value {
	return Value{Kind: KindFloat, V: [3]float32{f}}
}

// Vec2 returns a vec2 value.
func Vec2(x, y float32) Value {
	return Value{Kind: KindVec2, V: [3]float32{x, y}}
}

// Vec3 returns a vec3 value.
func Vec3(x, y, z float32) Value {
	return Value{Kind: KindVec3, V: [3]float32{x, y, z}}
}

// Color returns a colour value.
func Color(c RGB) Value {
	return Value{Kind: KindColor, V: c}
}

// RGB returns the value as a colour triple.
func (v Value) RGB() RGB {
	return RGB(v.V)
}

func (v Value) String() string {
	switch v.Kind {
	case KindFloat:
		return fmt.Sprintf("%g", v.V[0])
	case KindVec2:
		return fmt.Sprintf("(%g, %g)", v.V[0], v.V[1])
	case KindVec3:
		return fmt.Sprintf("(%g, %g, %g)", v.V[0], v.V[1], v.V[2])
	case KindColor:
		return v.RGB().String()
	default:
		return v.Kind.String()
	}
}

// ComponentIndex maps a property name to an index into Value.V for kind k.
// Scalars expose "value"; vectors expose x/y/z; colours expose r/g/b.
func ComponentIndex(k Kind, property string) (int, error) {
	var idx int
	switch property {
	case "value":
		if k != KindFloat {
			return 0, fmt.Errorf("%w: property %q needs a float, uniform is %s", ErrInvalidValue, property, k)
		}
		return 0, nil
	case "x", "r":
		idx = 0
	case "y", "g":
		idx = 1
	case "z", "b":
		idx = 2
	default:
		return 0, fmt.Errorf("%w: unknown property %q", ErrInvalidValue, property)
	}
	if k == KindFloat || idx >= k.Components() {
		return 0, fmt.Errorf("%w: property %q out of range for %s", ErrInvalidValue, property, k)
	}
	return idx, nil
}
