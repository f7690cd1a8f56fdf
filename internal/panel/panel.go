// Package panel registers a descriptor's curated controls with a parameter panel.
package panel

import (
	"errors"
	"fmt"
	"math"

	"github.com/Faultbox/shadergrid/internal/descriptor"
	"github.com/Faultbox/shadergrid/internal/engine/material"
	"github.com/Faultbox/shadergrid/internal/uniform"
)

var (
	// ErrUnknownUniform is returned when a control names a uniform the material lacks.
	ErrUnknownUniform = errors.New("unknown uniform")
	// ErrInvalidControl is returned for controls that cannot be bound as declared.
	ErrInvalidControl = errors.New("invalid control")
)

// Panel is the widget surface controls are registered with. Registration is
// a side effect only; the panel reads and writes through the pointers it gets.
type Panel interface {
	// Section starts a group of controls.
	Section(title string)
	// AddNumber binds a slider to value.
	AddNumber(value *float32, min, max, step float32, label string)
	// AddColor binds a colour editor to holder; onChange runs after every edit.
	AddColor(holder *uniform.RGB, label string, onChange func())
}

// Bind registers desc's controls against mat. Nothing is registered when
// any control is invalid.
func Bind(p Panel, title string, desc *descriptor.Mesh, mat *material.Material) error {
	if len(desc.Controls) == 0 {
		return nil
	}

	regs := make([]func(), 0, len(desc.Controls))
	for _, c := range desc.Controls {
		reg, err := prepare(p, desc, mat, c)
		if err != nil {
			return fmt.Errorf("control %s: %w", c.DisplayLabel(), err)
		}
		regs = append(regs, reg)
	}

	p.Section(title)
	for _, reg := range regs {
		reg()
	}
	return nil
}

func prepare(p Panel, desc *descriptor.Mesh, mat *material.Material, c descriptor.Control) (func(), error) {
	cell, ok := mat.Uniform(c.Uniform)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUniform, c.Uniform)
	}
	label := c.DisplayLabel()

	switch c.Kind() {
	case descriptor.ControlNumber:
		if c.Min > c.Max {
			return nil, fmt.Errorf("%w: min %g > max %g", ErrInvalidControl, c.Min, c.Max)
		}
		if c.Step <= 0 {
			return nil, fmt.Errorf("%w: step must be positive", ErrInvalidControl)
		}
		property := c.Property
		if property == "" {
			property = "value"
		}
		value, err := cell.Component(property)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidControl, err)
		}
		return func() { p.AddNumber(value, c.Min, c.Max, c.Step, label) }, nil

	case descriptor.ControlColor:
		if cell.Kind != uniform.KindColor {
			return nil, fmt.Errorf("%w: uniform %q is %s, not a colour", ErrInvalidControl, c.Uniform, cell.Kind)
		}
		holder := desc.DebugColors[c.Uniform]
		if holder == nil {
			return nil, fmt.Errorf("%w: no debug colour holder for %q", ErrInvalidControl, c.Uniform)
		}
		// The callback copies into the existing cell; the material keeps
		// referencing the same *Uniform.
		onChange := func() { cell.SetColor(*holder) }
		return func() { p.AddColor(holder, label, onChange) }, nil

	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidControl, c.Type)
	}
}

// Snap rounds v to the nearest multiple of step above min and clamps the
// result to [min, max].
func Snap(v, min, max, step float32) float32 {
	if step > 0 {
		n := math.Round(float64((v - min) / step))
		v = min + float32(n)*step
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Discard is a Panel that drops every registration. Binding against it
// still validates the controls.
var Discard Panel = discard{}

type discard struct{}

func (discard) Section(string) {}

func (discard) AddNumber(*float32, float32, float32, float32, string) {}

func (discard) AddColor(*uniform.RGB, string, func()) {}
