// Package layout places meshes on a centered grid.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/shadergrid/pkg/math"
)

// ErrInvalidLayout is returned for grid configurations that have no defined placement.
var ErrInvalidLayout = errors.New("invalid layout")

// Policy selects how rows are placed vertically.
type Policy int

const (
	// PolicyStack puts row 0 at y=0 and stacks following rows downwards.
	PolicyStack Policy = iota
	// PolicyCenter centers the whole block of rows around y=0.
	PolicyCenter
)

// String returns the config name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyStack:
		return "stack"
	case PolicyCenter:
		return "center"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy converts a config string ("stack" or "center") to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stack":
		return PolicyStack, nil
	case "center", "centre":
		return PolicyCenter, nil
	default:
		return 0, fmt.Errorf("%w: unknown vertical policy %q", ErrInvalidLayout, s)
	}
}

// Grid holds the layout constants. They are fixed at startup.
type Grid struct {
	MeshWidth       float32
	MeshHeight      float32
	Spacing         float32 // horizontal gap between meshes in a row
	VerticalSpacing float32 // gap between rows
	MaxPerRow       int
	Policy          Policy
}

// Validate checks that the grid can place total items.
func (g Grid) Validate(total int) error {
	switch {
	case total <= 0:
		return fmt.Errorf("%w: total count must be positive, got %d", ErrInvalidLayout, total)
	case g.MaxPerRow <= 0:
		return fmt.Errorf("%w: max per row must be positive, got %d", ErrInvalidLayout, g.MaxPerRow)
	case g.MeshWidth <= 0 || g.MeshHeight <= 0:
		return fmt.Errorf("%w: mesh size must be positive, got %gx%g", ErrInvalidLayout, g.MeshWidth, g.MeshHeight)
	case g.Policy != PolicyStack && g.Policy != PolicyCenter:
		return fmt.Errorf("%w: %s", ErrInvalidLayout, g.Policy)
	}
	return nil
}

// Rows returns the number of rows needed for total items.
func (g Grid) Rows(total int) int {
	return (total + g.MaxPerRow - 1) / g.MaxPerRow
}

// Position returns the center of item index out of total.
func (g Grid) Position(index, total int) (math.Vec2, error) {
	if err := g.Validate(total); err != nil {
		return math.Vec2{}, err
	}
	if index < 0 || index >= total {
		return math.Vec2{}, fmt.Errorf("%w: index %d outside [0,%d)", ErrInvalidLayout, index, total)
	}
	return g.position(index, total), nil
}

// Positions returns the placement of every item in order.
func (g Grid) Positions(total int) ([]math.Vec2, error) {
	if err := g.Validate(total); err != nil {
		return nil, err
	}
	out := make([]math.Vec2, total)
	for i := range out {
		out[i] = g.position(i, total)
	}
	return out, nil
}

func (g Grid) position(index, total int) math.Vec2 {
	row := index / g.MaxPerRow
	col := index % g.MaxPerRow

	// The last row may be partial; every row is centered on its own width.
	itemsInRow := min(total-row*g.MaxPerRow, g.MaxPerRow)
	rowWidth := g.MeshWidth*float32(itemsInRow) + g.Spacing*float32(itemsInRow-1)
	x := -rowWidth/2 + g.MeshWidth/2 + float32(col)*(g.MeshWidth+g.Spacing)

	var y0 float32
	if g.Policy == PolicyCenter {
		rows := g.Rows(total)
		rowsHeight := float32(rows)*g.MeshHeight + g.VerticalSpacing*float32(rows-1)
		y0 = rowsHeight/2 - g.MeshHeight/2
	}
	y := y0 - float32(row)*(g.MeshHeight+g.VerticalSpacing)

	return math.Vec2{X: x, Y: y}
}
