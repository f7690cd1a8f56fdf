package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/shadergrid/pkg/math"
)

const eps = 1e-5

func sandboxGrid(policy Policy) Grid {
	return Grid{
		MeshWidth:       1,
		MeshHeight:      1,
		Spacing:         0.1,
		VerticalSpacing: 0.1,
		MaxPerRow:       2,
		Policy:          policy,
	}
}

func TestPositionsStackThreeMeshes(t *testing.T) {
	got, err := sandboxGrid(PolicyStack).Positions(3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	want := []math.Vec2{{X: -0.55, Y: 0}, {X: 0.55, Y: 0}, {X: 0, Y: -1.1}}
	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, eps, "x of item %d", i)
		assert.InDelta(t, want[i].Y, got[i].Y, eps, "y of item %d", i)
	}
}

func TestPositionsCenterThreeMeshes(t *testing.T) {
	got, err := sandboxGrid(PolicyCenter).Positions(3)
	require.NoError(t, err)

	// Two rows of height 1 with a 0.1 gap: block height 2.1, rows at +-0.55.
	want := []math.Vec2{{X: -0.55, Y: 0.55}, {X: 0.55, Y: 0.55}, {X: 0, Y: -0.55}}
	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, eps, "x of item %d", i)
		assert.InDelta(t, want[i].Y, got[i].Y, eps, "y of item %d", i)
	}
}

func TestPositionsDistinctAndRowIndex(t *testing.T) {
	for _, policy := range []Policy{PolicyStack, PolicyCenter} {
		for maxPerRow := 1; maxPerRow <= 5; maxPerRow++ {
			for n := 1; n <= 12; n++ {
				g := sandboxGrid(policy)
				g.MaxPerRow = maxPerRow

				got, err := g.Positions(n)
				require.NoError(t, err)
				require.Len(t, got, n)

				seen := make(map[math.Vec2]int, n)
				for i, p := range got {
					if j, dup := seen[p]; dup {
						t.Fatalf("%s n=%d max=%d: items %d and %d share %v", policy, n, maxPerRow, j, i, p)
					}
					seen[p] = i

					// Every item in the same row shares y, and y steps by row pitch.
					row := i / maxPerRow
					assert.InDelta(t, got[0].Y-float32(row)*1.1, p.Y, eps)
				}
			}
		}
	}
}

func TestFullRowsAreSymmetric(t *testing.T) {
	g := sandboxGrid(PolicyStack)
	g.MaxPerRow = 4

	got, err := g.Positions(10)
	require.NoError(t, err)

	// Rows 0 and 1 are full, row 2 holds two items.
	for row := 0; row < 2; row++ {
		items := got[row*4 : row*4+4]
		for k := range items {
			mirror := items[len(items)-1-k]
			assert.InDelta(t, 0, items[k].X+mirror.X, eps, "row %d item %d", row, k)
		}
	}
	assert.InDelta(t, 0, got[8].X+got[9].X, eps, "partial row is centered too")
}

func TestSingleItemIsAtOrigin(t *testing.T) {
	for _, policy := range []Policy{PolicyStack, PolicyCenter} {
		p, err := sandboxGrid(policy).Position(0, 1)
		require.NoError(t, err)
		assert.InDelta(t, 0, p.X, eps)
		assert.InDelta(t, 0, p.Y, eps)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		grid  func(Grid) Grid
		total int
	}{
		{name: "zero total", grid: func(g Grid) Grid { return g }, total: 0},
		{name: "negative total", grid: func(g Grid) Grid { return g }, total: -2},
		{name: "zero max per row", grid: func(g Grid) Grid { g.MaxPerRow = 0; return g }, total: 3},
		{name: "negative max per row", grid: func(g Grid) Grid { g.MaxPerRow = -1; return g }, total: 3},
		{name: "zero width", grid: func(g Grid) Grid { g.MeshWidth = 0; return g }, total: 3},
		{name: "unknown policy", grid: func(g Grid) Grid { g.Policy = Policy(7); return g }, total: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.grid(sandboxGrid(PolicyStack))
			_, err := g.Positions(tt.total)
			assert.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}

func TestPositionIndexOutOfRange(t *testing.T) {
	g := sandboxGrid(PolicyStack)

	_, err := g.Position(3, 3)
	assert.ErrorIs(t, err, ErrInvalidLayout)

	_, err = g.Position(-1, 3)
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("stack")
	require.NoError(t, err)
	assert.Equal(t, PolicyStack, p)

	p, err = ParsePolicy(" Center ")
	require.NoError(t, err)
	assert.Equal(t, PolicyCenter, p)

	_, err = ParsePolicy("diagonal")
	assert.ErrorIs(t, err, ErrInvalidLayout)

	assert.Equal(t, "center", PolicyCenter.String())
}
