// Package grid_test: flattening tile grids back into value grids.
package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/collapse/grid"
)

// TestDetile_Collapsed: every output cell (x, y) equals the tile at
// (x/W, y/H)'s value at (x%W, y%H).
func TestDetile_Collapsed(t *testing.T) {
	t.Parallel()

	tiles := [2][2]grid.Tile[string]{
		{tileOf("a", "b", "c", "d"), tileOf("e", "f", "g", "h")},
		{tileOf("i", "j", "k", "l"), tileOf("m", "n", "o", "p")},
	}
	g := grid.New[grid.Tile[string]](2, 2)
	for y := uint(0); y < 2; y++ {
		for x := uint(0); x < 2; x++ {
			g.Collapse(grid.NewCoord2D(x, y), tiles[y][x])
		}
	}

	flat := grid.Detile(g)
	require.Equal(t, uint(4), flat.X())
	require.Equal(t, uint(4), flat.Y())

	for y := uint(0); y < 4; y++ {
		for x := uint(0); x < 4; x++ {
			c, ok := flat.Cell(grid.NewCoord2D(x, y))
			require.True(t, ok)
			got, collapsed := c.Value()
			require.True(t, collapsed, "cell (%d,%d) must be collapsed", x, y)

			tile := tiles[y/grid.TileHeight][x/grid.TileWidth]
			want, _ := tile.At(x%grid.TileWidth, y%grid.TileHeight)
			require.Equal(t, want, got)
		}
	}
}

// TestDetile_Uncollapsed: an uncollapsed tile cell spreads per-position
// weight sums across its footprint.
func TestDetile_Uncollapsed(t *testing.T) {
	t.Parallel()

	g := grid.New[grid.Tile[string]](1, 1)
	c, _ := g.Cell(grid.NewCoord2D(0, 0))
	c.SetPossibilities(map[grid.Tile[string]]int{
		tileOf("a", "b", "c", "d"): 2,
		tileOf("a", "x", "c", "y"): 3,
	})

	flat := grid.Detile(g)

	topLeft, _ := flat.Cell(grid.NewCoord2D(0, 0))
	require.Equal(t, map[string]int{"a": 5}, topLeft.Possibilities())

	topRight, _ := flat.Cell(grid.NewCoord2D(1, 0))
	require.Equal(t, map[string]int{"b": 2, "x": 3}, topRight.Possibilities())

	bottomRight, _ := flat.Cell(grid.NewCoord2D(1, 1))
	require.Equal(t, map[string]int{"d": 2, "y": 3}, bottomRight.Possibilities())
}
