package material

import (
	"fmt"

	"github.com/Faultbox/shadergrid/internal/engine/texture"
	"github.com/Faultbox/shadergrid/internal/uniform"
)

// Uniform is a mutable uniform cell. Data holds up to three floats; samplers
// use Texture instead.
type Uniform struct {
	Kind    uniform.Kind
	Data    [3]float32
	Texture *texture.Texture
}

// NewUniform returns a cell holding v.
func NewUniform(v uniform.Value) *Uniform {
	return &Uniform{Kind: v.Kind, Data: v.V}
}

// NewSampler returns a sampler cell bound to tex. A nil or unloaded texture
// leaves the slot unpopulated.
func NewSampler(tex *texture.Texture) *Uniform {
	return &Uniform{Kind: uniform.KindSampler, Texture: tex}
}

// Set overwrites the cell contents, including its kind.
func (u *Uniform) Set(v uniform.Value) {
	u.Kind = v.Kind
	u.Data = v.V
	u.Texture = nil
}

// SetFloat stores a float.
func (u *Uniform) SetFloat(f float32) {
	u.Kind = uniform.KindFloat
	u.Data = [3]float32{f}
}

// SetColor copies c into the cell.
func (u *Uniform) SetColor(c uniform.RGB) {
	u.Kind = uniform.KindColor
	u.Data = c
}

// Float returns the first component.
func (u *Uniform) Float() float32 {
	return u.Data[0]
}

// Value returns the cell as a plain value. Samplers have no value.
func (u *Uniform) Value() uniform.Value {
	return uniform.Value{Kind: u.Kind, V: u.Data}
}

// Component returns a pointer into the cell for a panel control: "value"
// for floats, x/y/z for vectors, r/g/b for colours.
func (u *Uniform) Component(property string) (*float32, error) {
	idx, err := uniform.ComponentIndex(u.Kind, property)
	if err != nil {
		return nil, fmt.Errorf("component %q: %w", property, err)
	}
	return &u.Data[idx], nil
}
