package uniform

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML writes the colour as a string literal.
func (c RGB) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML reads a colour string.
func (c *RGB) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: colour must be a string", ErrInvalidValue, node.Line)
	}
	parsed, err := ParseColor(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML writes floats as numbers, vectors as flow sequences and
// colours as strings.
func (v Value) MarshalYAML() (any, error) {
	switch v.Kind {
	case KindFloat:
		return v.V[0], nil
	case KindVec2, KindVec3:
		n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, f := range v.V[:v.Kind.Components()] {
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(f)})
		}
		return n, nil
	case KindColor:
		return v.RGB().String(), nil
	default:
		return nil, fmt.Errorf("%w: cannot encode %s", ErrInvalidValue, v.Kind)
	}
}

// UnmarshalYAML infers the kind from the node shape: a number is a float,
// a sequence of two or three numbers a vector, any other string a colour.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var f float32
		if err := node.Decode(&f); err == nil {
			*v = Float(f)
			return nil
		}
		var c RGB
		if err := c.UnmarshalYAML(node); err != nil {
			return err
		}
		*v = Color(c)
		return nil
	case yaml.SequenceNode:
		var fs []float32
		if err := node.Decode(&fs); err != nil {
			return fmt.Errorf("%w: line %d: vector components must be numbers", ErrInvalidValue, node.Line)
		}
		switch len(fs) {
		case 2:
			*v = Vec2(fs[0], fs[1])
		case 3:
			*v = Vec3(fs[0], fs[1], fs[2])
		default:
			return fmt.Errorf("%w: line %d: vector needs 2 or 3 components, got %d", ErrInvalidValue, node.Line, len(fs))
		}
		return nil
	default:
		return fmt.Errorf("%w: line %d: unsupported node", ErrInvalidValue, node.Line)
	}
}

func formatFloat(f float32) string {
	return fmt.Sprintf("%v", f)
}
